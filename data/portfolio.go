package data

import "portfolio/model"

var Personal = model.PersonalInfo{
	Name:       "GEMUEL JOY V. ALCANTARA",
	Photo:      "/files/gemuel.jpg",
	Title:      "Full-Stack Web Developer",
	Tagline:    "Specializing in Laravel development with a full-stack approach to building scalable, secure, and user-focused web applications.",
	Intro:      "I'm a full-stack developer with a strong focus on PHP (Laravel), delivering clean, maintainable, and scalable web solutions across a wide range of industries. Over the years, I've built and maintained robust backend systems, dynamic admin panels, and responsive user interfaces. My experience also extends to React.js and modern frontend development, enabling me to handle end-to-end application workflows—from API architecture to polished UIs. Whether it's an e-commerce platform, a CMS, or an AI-powered tool, I bring both backend reliability and frontend usability to every project.",
	Email:      "gem.alcantara.ga@gmail.com",
	Phone:      "+639212434890",
	Location:   "Novaliches, Quezon City",
	Linkedin:   "https://www.linkedin.com/in/gemuel-joy-alcantara-233437187/",
	Github:     "https://github.com/gemalcantara",
	Resume:     "/files/gemuel-alcantara-resume.pdf",
	ResumeName: "Gemuel_Joy_Alcantara_Resume.pdf",
}

var Skills = []model.SkillGroup{
	{Category: "Languages & Frameworks", Items: []string{"PHP (Laravel)", "Node.js", "Vue.js", "React.js", "JavaScript", "TypeScript", "HTML", "CSS", "Bootstrap", "SASS", "Tailwind CSS", "jQuery"}},
	{Category: "Databases", Items: []string{"MySQL", "MongoDB", "MS SQL", "Redis", "Firebase", "Supabase"}},
	{Category: "Tools & Technologies", Items: []string{"Docker", "REST APIs", "Git", "Postman", "Webpack"}},
	{Category: "DevOps & Source Control", Items: []string{"GitLab", "Git", "Digital Ocean", "Vercel", "Google Cloud Platform (GCP)"}},
	{Category: "AI Integration", Items: []string{"OpenAI (GPT)", "Anthropic (Claude)"}},
}

var Projects = []model.Project{
	{
		ID:           "ecommerce",
		Title:        "The Six Pack Chef – E-Commerce Platform",
		Icon:         "🍽️",
		Technologies: []string{"PHP", "Laravel", "Vue.js", "MySQL", "PayMaya", "PayMongo", "Redis", "Cron Jobs"},
		ShortDesc:    "A subscription-based Laravel e-commerce platform for fitness-focused meal delivery with dynamic cart and recurring payment features.",
		Images: []model.ProjectImage{
			{Src: "/project-images/sixpackchef/The-Six-Pack-Chef-05-30-2025_10_40_PM.png", Alt: "E-commerce homepage", Width: 1200, Height: 800},
			{Src: "/project-images/sixpackchef/Meal-Plan-The-Six-Pack-Chef-05-30-2025_10_41_PM.png", Alt: "Meal plan selection page", Width: 1200, Height: 800},
			{Src: "/project-images/sixpackchef/The-Six-Pack-Chef-05-31-2025_04_09_PM.png", Alt: "E-commerce homepage Mobile View", Width: 1200, Height: 800},
			{Src: "/project-images/sixpackchef/Meal-Plan-The-Six-Pack-Chef-05-31-2025_04_10_PM.png", Alt: "Meal plan selection page Mobile View", Width: 1200, Height: 800},
			{Src: "/project-images/sixpackchef/image.png", Alt: "Meal plan selection page (redesign)", Width: 1200, Height: 800},
		},
		CaseStudy: model.CaseStudy{
			Role:      "Full-Stack Developer",
			Challenge: "Build a flexible meal subscription system with custom plan management and secure payment integration.",
			Solution:  "Developed a dynamic cart system, integrated PayMongo and PayMaya, and built admin panels for order tracking. Implemented scheduled job for data synchronization and payment processing.",
			Impact:    "Enhanced operational efficiency and user experience; significantly reduced support workload.",
			Learnings: "Advanced understanding of e-commerce architecture, payment logic, and scheduled order workflows.",
		},
	},
	{
		ID:           "cms",
		Title:        "ClickUp CMS Form Builder",
		Icon:         "🧩",
		Technologies: []string{"Node.js", "React.js", "MongoDB", "ClickUp API", "Material UI"},
		ShortDesc:    "Custom-built form tool allowing users to create ClickUp-compatible forms with custom field mapping and advanced input logic.",
		Images: []model.ProjectImage{
			{Src: "/project-images/clickup api, cms/goconstellation-utilities-yr6r9-ondigitalocean-app-form-67aa206072fcc052492e7b7f-05-30-2025_11_50_PM.png", Alt: "CMS content management dashboard", Width: 1200, Height: 800},
			{Src: "/project-images/clickup api, cms/goconstellation-utilities-yr6r9-ondigitalocean-app-form-builder-edit-67aa206072fcc052492e7b7f-05-30-2025_11_51_PM.png", Alt: "Form builder interface", Width: 1200, Height: 800},
		},
		CaseStudy: model.CaseStudy{
			Role:      "Full-Stack Developer",
			Challenge: "Overcome limitations of native ClickUp forms, especially around handling custom fields.",
			Solution:  "Created a React-based form builder integrated with ClickUp's API to dynamically update custom task fields with flexible mapping.",
			Impact:    "Enabled automation of task creation for operations teams; reduced manual entry and increased productivity.",
			Learnings: "Improved ability to build admin-focused tools with third-party APIs and advanced form control logic.",
		},
	},
	{
		ID:           "reservation",
		Title:        "Sip & Gogh Website",
		Icon:         "🖌️",
		Technologies: []string{"PHP", "Laravel", "JavaScript", "MySQL"},
		ShortDesc:    "A Laravel-based website for the Philippines' first paint-and-sip studio, featuring studio listings, event highlights, and online booking functionality.",
		Images: []model.ProjectImage{
			{Src: "/project-images/sip & gogh/Paint-and-Sip-Studio-Philippines-Sip-Gogh-05-30-2025_11_29_PM.png", Alt: "Studio homepage with booking options", Width: 1200, Height: 800},
			{Src: "/project-images/sip & gogh/Workshops-Sip-Gogh-05-30-2025_11_28_PM.png", Alt: "Available workshops listing", Width: 1200, Height: 800},
			{Src: "/project-images/sip & gogh/Book-Workshop-Sip-Gogh-05-30-2025_11_30_PM.png", Alt: "Workshop booking interface", Width: 1200, Height: 800},
			{Src: "/project-images/sip & gogh/Events-Sip-Gogh-05-31-2025_04_09_PM.png", Alt: "Available workshops listing Mobile View", Width: 1200, Height: 800},
			{Src: "/project-images/sip & gogh/Paint-and-Sip-Studio-Philippines-Sip-Gogh-05-31-2025_04_08_PM.png", Alt: "Studio homepage with booking options Mobile View", Width: 1200, Height: 800},
		},
		CaseStudy: model.CaseStudy{
			Role:      "Web Developer",
			Challenge: "Create a visually appealing and user-friendly site to support event bookings and brand visibility.",
			Solution:  "Developed a responsive, SEO-optimized Laravel site with a custom booking module, mobile support, and design aligned with the brand's creative aesthetic.",
			Impact:    "Increased customer engagement and online bookings; improved brand presentation and accessibility across devices.",
			Learnings: "Balanced visual creativity with backend efficiency; improved skills in UX-driven booking systems.",
		},
	},
	{
		ID:           "chrome-extension",
		Title:        "Chrome Extension – Prompt Manager for ChatGPT",
		Icon:         "🧪",
		Technologies: []string{"JavaScript", "Chrome APIs", "HTML", "CSS"},
		ShortDesc:    "A productivity Chrome extension for saving, organizing, and reusing AI prompts with support for variables and template sharing.",
		Images: []model.ProjectImage{
			{Src: "/project-images/Prompt List Chrome Extension/Screenshot 2025-05-30 230215.png", Alt: "Chrome extension popup interface", Width: 1200, Height: 800},
			{Src: "/project-images/Prompt List Chrome Extension/Screenshot 2025-05-30 230301.png", Alt: "Extension options page", Width: 1200, Height: 800},
		},
		CaseStudy: model.CaseStudy{
			Role:      "Extension Developer",
			Challenge: "Help users save time and reduce repetition when working with AI tools like ChatGPT.",
			Solution:  "Developed a browser extension using Chrome APIs and JavaScript to manage, search, and reuse prompt templates easily.",
			Impact:    "Increased productivity for freelancers and internal teams; improved AI usage consistency.",
			Learnings: "Gained real-world experience with browser extension APIs and local storage UX patterns.",
		},
	},
	{
		ID:           "ai-chatbot",
		Title:        "AI Article Writing Tool",
		Icon:         "🧠",
		Technologies: []string{"OpenAI (GPT)", "Anthropic (Claude)", "Node.js", "React.js", "Material UI"},
		ShortDesc:    "A web-based tool for generating SEO-optimized articles using OpenAI and Anthropic Claude for marketing and blog automation.",
		Images: []model.ProjectImage{
			{Src: "/project-images/Article Writing Tool/AI-Writing-Tool-05-30-2025_11_13_PM.png", Alt: "AI writing tool interface", Width: 1200, Height: 800},
			{Src: "/project-images/Article Writing Tool/AI-Writing-Tool-05-30-2025_11_14_PM.png", Alt: "Content generation workflow", Width: 1200, Height: 800},
			{Src: "/project-images/Article Writing Tool/AI-Writing-Tool-05-30-2025_11_16_PM.png", Alt: "Generated content result", Width: 1200, Height: 800},
		},
		CaseStudy: model.CaseStudy{
			Role:      "Full-Stack Developer",
			Challenge: "Enable users to generate high-quality content tailored to tone and length, using different LLMs.",
			Solution:  "Built a tool integrating OpenAI and Claude APIs, with custom prompt controls, tone settings, and caching for efficiency.",
			Impact:    "Reduced writing workload and increased scalability for content agencies and marketers.",
			Learnings: "Gained deep integration experience with multiple LLMs and implemented token-efficient AI workflows.",
		},
	},
	{
		ID:           "education-platform",
		Title:        "Ateneo Center for Continuing Education (CCE) Website",
		Icon:         "🎓",
		Technologies: []string{"PHP", "Laravel", "JavaScript", "MySQL"},
		ShortDesc:    "University website for showcasing professional development programs, enabling course search, registration, and inquiries.",
		Images: []model.ProjectImage{
			{Src: "/project-images/CCE/Homepage-Ateneo-Graduate-School-of-Business-05-30-2025_11_40_PM.png", Alt: "Platform homepage", Width: 1200, Height: 800},
			{Src: "/project-images/CCE/Calendar-Ateneo-Graduate-School-of-Business-05-30-2025_11_42_PM.png", Alt: "Scheduling calendar interface", Width: 1200, Height: 800},
			{Src: "/project-images/CCE/Programs-Ateneo-Graduate-School-of-Business-05-30-2025_11_41_PM.png", Alt: "Service programs listing", Width: 1200, Height: 800},
		},
		CaseStudy: model.CaseStudy{
			Role:      "Backend & Content Developer",
			Challenge: "Improve course visibility, search, and registration features while minimizing manual content updates.",
			Solution:  "Enhanced backend data handling, built dynamic course listings.",
			Impact:    "Reduced content management effort; increased enrollment inquiries and improved user retention.",
			Learnings: "Improved backend performance in data-heavy platforms.",
		},
	},
}

// ProjectByID returns the project with the given id, or false when no
// such project exists.
func ProjectByID(id string) (model.Project, bool) {
	for _, p := range Projects {
		if p.ID == id {
			return p, true
		}
	}
	return model.Project{}, false
}
