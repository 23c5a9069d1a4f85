package portfolio

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"portfolio/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	PortfolioController(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
	return w
}

func TestGetProfile(t *testing.T) {
	w := get(t, "/api/profile")
	require.Equal(t, 200, w.Code)

	var info model.PersonalInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.NotEmpty(t, info.Name)
	assert.NotEmpty(t, info.Email)
}

func TestGetSkills(t *testing.T) {
	w := get(t, "/api/skills")
	require.Equal(t, 200, w.Code)

	var groups []model.SkillGroup
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &groups))
	assert.NotEmpty(t, groups)
}

func TestGetProjectsFullCatalog(t *testing.T) {
	w := get(t, "/api/projects")
	require.Equal(t, 200, w.Code)

	var projects []model.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))

	var ids []string
	for _, p := range projects {
		ids = append(ids, p.ID)
		assert.NotEmpty(t, p.Images, "project %s has no images", p.ID)
		assert.NotEmpty(t, p.CaseStudy.Challenge, "project %s has no case study", p.ID)
	}
	assert.Equal(t, []string{"ecommerce", "cms", "reservation", "chrome-extension", "ai-chatbot", "education-platform"}, ids)
}

func TestGetProjectByID(t *testing.T) {
	w := get(t, "/api/projects/ecommerce")
	require.Equal(t, 200, w.Code)

	var project model.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))
	assert.Equal(t, "ecommerce", project.ID)
	assert.Len(t, project.Images, 5)
}

func TestGetProjectUnknownID(t *testing.T) {
	w := get(t, "/api/projects/nope")
	assert.Equal(t, 404, w.Code)
}
