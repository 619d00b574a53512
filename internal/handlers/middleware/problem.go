package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"
)

// abortWithProblem responde com um documento RFC 7807 traduzido
func abortWithProblem(c *gin.Context, status int, problemType, titleKey, detailKey string) {
	problem := problems.NewDetailedProblem(status, Translate(c, detailKey))
	problem.Type = c.GetString("base_url") + problemType
	problem.Title = Translate(c, titleKey)
	problem.Instance = c.Request.URL.Path

	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(status, problem)
}
