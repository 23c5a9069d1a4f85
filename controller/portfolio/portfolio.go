package portfolio

import (
	"portfolio/data"

	"github.com/gin-gonic/gin"
)

func PortfolioController(router *gin.Engine) {
	routes := router.Group("/api")
	{
		routes.GET("/profile", GetProfile)
		routes.GET("/skills", GetSkills)
		routes.GET("/projects", GetProjects)
		routes.GET("/projects/:id", GetProject)
	}
}

func GetProfile(c *gin.Context) {
	c.JSON(200, data.Personal)
}

func GetSkills(c *gin.Context) {
	c.JSON(200, data.Skills)
}

func GetProjects(c *gin.Context) {
	c.JSON(200, data.Projects)
}

func GetProject(c *gin.Context) {
	project, ok := data.ProjectByID(c.Param("id"))
	if !ok {
		c.JSON(404, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(200, project)
}
