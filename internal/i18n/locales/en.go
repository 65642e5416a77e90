package locales

// MessagesEn English translations
var MessagesEn = map[string]string{
	// Meeting mode notices
	"meeting.started":     "Meeting mode started by @{{.UserName}}: {{.LanguageA}} ↔ {{.LanguageB}}",
	"meeting.already":     "Meeting mode is already in progress on this channel",
	"meeting.stopped":     "Meeting mode stopped by @{{.UserName}}",
	"meeting.not_running": "Meeting mode is not in progress on this channel",
	"meeting.store_error": "Meeting mode is unavailable: the configuration store cannot be reached",
}
