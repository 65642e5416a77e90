package handler

import (
	"io"
	"net/http"

	app_errors "slack-translator/internal/errors"
	"slack-translator/internal/response"
	"slack-translator/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// Events handles the event subscription callback. URL verification
// handshakes echo the challenge back; message events in a channel under
// meeting mode are relayed through the translator.
func (s *Server) Events(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrBadRequest, "failed to read request body"))
		return
	}

	parsed := gjson.ParseBytes(body)

	if challenge := parsed.Get("challenge"); challenge.Exists() {
		c.String(http.StatusOK, challenge.String())
		return
	}

	ev := services.Event{
		Channel: parsed.Get("event.channel").String(),
		Text:    parsed.Get("event.text").String(),
		User:    parsed.Get("event.user").String(),
		BotID:   parsed.Get("event.bot_id").String(),
	}

	// The platform retries on non-200, which would duplicate messages, so
	// relay failures are logged and acknowledged anyway.
	if err := s.Relay.HandleEvent(c.Request.Context(), ev); err != nil {
		logrus.WithError(err).WithField("channel", ev.Channel).Error("failed to relay event")
	}

	c.String(http.StatusOK, "")
}

// StartMeetingMode turns on bidirectional auto-translation for the
// requesting channel.
func (s *Server) StartMeetingMode(c *gin.Context) {
	channelID := c.Request.FormValue("channel_id")
	userID := c.Request.FormValue("user_id")
	userName := c.Request.FormValue("user_name")
	lang1 := c.Param("language1")
	lang2 := c.Param("language2")

	if err := s.MeetingMode.Start(c.Request.Context(), channelID, userID, userName, lang1, lang2); err != nil {
		c.Error(err)
		return
	}

	c.String(http.StatusOK, "")
}

// StopMeetingMode turns off auto-translation for the requesting channel.
func (s *Server) StopMeetingMode(c *gin.Context) {
	channelID := c.Request.FormValue("channel_id")
	userName := c.Request.FormValue("user_name")

	if err := s.MeetingMode.Stop(c.Request.Context(), channelID, userName); err != nil {
		c.Error(err)
		return
	}

	c.String(http.StatusOK, "")
}
