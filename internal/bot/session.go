package bot

import (
	"sync"

	"github.com/americanglobalgroup/parcel-tracker/internal/i18n"
	"github.com/americanglobalgroup/parcel-tracker/internal/tracking"
)

// session is the conversation state of one user. It lives in memory only;
// the language is also stored with the user.
type session struct {
	language i18n.Language
	route    tracking.Route
}

type sessions struct {
	lock   sync.RWMutex
	byUser map[int64]session
}

func newSessions() *sessions {
	return &sessions{byUser: make(map[int64]session)}
}

func (s *sessions) get(userID int64) (session, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	sess, ok := s.byUser[userID]
	return sess, ok
}

func (s *sessions) setLanguage(userID int64, lang i18n.Language) {
	s.lock.Lock()
	defer s.lock.Unlock()
	sess := s.byUser[userID]
	sess.language = lang
	s.byUser[userID] = sess
}

func (s *sessions) setRoute(userID int64, route tracking.Route) {
	s.lock.Lock()
	defer s.lock.Unlock()
	sess := s.byUser[userID]
	sess.route = route
	s.byUser[userID] = sess
}
