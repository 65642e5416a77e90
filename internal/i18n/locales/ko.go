package locales

// MessagesKo Korean translations
var MessagesKo = map[string]string{
	// Meeting mode notices
	"meeting.started":     "@{{.UserName}} 님이 회의 모드를 시작했습니다: {{.LanguageA}} ↔ {{.LanguageB}}",
	"meeting.already":     "이 채널에서는 이미 회의 모드가 진행 중입니다",
	"meeting.stopped":     "@{{.UserName}} 님이 회의 모드를 종료했습니다",
	"meeting.not_running": "이 채널에서는 회의 모드가 진행 중이 아닙니다",
	"meeting.store_error": "회의 모드를 사용할 수 없습니다: 설정 저장소에 연결할 수 없습니다",
}
