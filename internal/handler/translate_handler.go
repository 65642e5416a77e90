package handler

import (
	"net/http"

	"slack-translator/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Translate handles the direct slash-command translation route. The source
// and target languages come from the path, everything else from the query
// string or form body. The platform expects a prompt 200 regardless of
// the translation outcome, so dispatch failures are logged, not surfaced.
func (s *Server) Translate(c *gin.Context) {
	job := services.TranslateJob{
		UserID:      c.Request.FormValue("user_id"),
		UserName:    c.Request.FormValue("user_name"),
		ChannelName: c.Request.FormValue("channel_name"),
		Text:        c.Request.FormValue("text"),
		SourceLang:  c.Param("from"),
		TargetLang:  c.Param("to"),
	}

	if err := s.Dispatcher.Enqueue(job); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"channel": job.ChannelName,
			"source":  job.SourceLang,
			"target":  job.TargetLang,
		}).Error("failed to dispatch translation")
	}

	c.String(http.StatusOK, "ok")
}
