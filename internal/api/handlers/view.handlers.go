package routes

import (
	"net/http"
	"strconv"

	"tripweaver/internal/service/session"
	"tripweaver/internal/view"

	"github.com/gin-gonic/gin"
)

// GetView returns the derived map/list view state for a session:
// day-filtered markers with ordinals and colors, solid/dashed route
// paths, and the viewport bounds. An explicit ?day= overrides the
// session's stored day filter for this response only.
func GetView(c *gin.Context) {
	threadID := c.Param("threadId")

	sess, err := session.GetSessionService().Get(threadID)
	if err != nil {
		writeSessionError(c, err)
		return
	}

	if dayParam := c.Query("day"); dayParam != "" {
		day, err := strconv.Atoi(dayParam)
		if err != nil || day < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "day must be a non-negative integer"})
			return
		}
		sess.SelectedDay = day
	}

	c.JSON(http.StatusOK, view.Project(sess))
}
