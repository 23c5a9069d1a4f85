package model

type PersonalInfo struct {
	Name       string `json:"name"`
	Photo      string `json:"photo"`
	Title      string `json:"title"`
	Tagline    string `json:"tagline"`
	Intro      string `json:"intro"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
	Linkedin   string `json:"linkedin"`
	Github     string `json:"github"`
	Resume     string `json:"resume"`
	ResumeName string `json:"resumeName"`
}

type ProjectImage struct {
	Src    string `json:"src"`
	Alt    string `json:"alt"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type CaseStudy struct {
	Role      string `json:"role"`
	Challenge string `json:"challenge"`
	Solution  string `json:"solution"`
	Impact    string `json:"impact"`
	Learnings string `json:"learnings"`
}

type Project struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Icon         string         `json:"icon"`
	Technologies []string       `json:"technologies"`
	ShortDesc    string         `json:"shortDesc"`
	Images       []ProjectImage `json:"images"`
	CaseStudy    CaseStudy      `json:"caseStudy"`
}

// Skills groups skill names by category, preserving the category order
// used on the page.
type SkillGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}
