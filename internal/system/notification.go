// internal/system/notification.go
package system

import (
	"github.com/cheraljun/BoomBoomBoom/internal/config"
	"github.com/cheraljun/BoomBoomBoom/internal/event"
)

const (
	// сколько последних сообщений хранится для терминала
	noticeHistory = 6
)

// Notice is a banner shown to the player.
type Notice struct {
	Text  string
	Life  int
	Alpha float64
	Slide float64
}

// NotificationSystem показывает последнее сообщение, въезжающее сбоку
// и гаснущее в конце жизни. В бесконечном режиме сообщения не показываются.
type NotificationSystem struct {
	Enabled bool
	Current *Notice
	History []string
}

func NewNotificationSystem(dispatcher *event.Dispatcher, enabled bool) *NotificationSystem {
	s := &NotificationSystem{Enabled: enabled}
	dispatcher.Subscribe(event.Notification, s)
	return s
}

func (s *NotificationSystem) OnEvent(e event.Event) {
	if text, ok := e.Data.(string); ok {
		s.Add(text)
	}
}

func (s *NotificationSystem) Add(text string) {
	if !s.Enabled {
		return
	}
	s.Current = &Notice{Text: text, Life: config.NotificationFrames}
	s.History = append(s.History, text)
	if len(s.History) > noticeHistory {
		s.History = s.History[len(s.History)-noticeHistory:]
	}
}

func (s *NotificationSystem) Update() {
	n := s.Current
	if n == nil {
		return
	}
	n.Life--
	switch {
	case n.Slide < 1:
		n.Slide = min(n.Slide+config.NotificationFadeIn, 1)
		n.Alpha = n.Slide
	case n.Life < config.NotificationFadeOut:
		n.Alpha = float64(n.Life) / config.NotificationFadeOut
	default:
		n.Alpha = 1
	}
	if n.Life <= 0 {
		s.Current = nil
	}
}

func (s *NotificationSystem) Clear() {
	s.Current = nil
	s.History = nil
}
