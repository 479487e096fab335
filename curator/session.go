// Session state for one interactive run.
//
// Information Hiding:
// - Cache invalidation coupled to topic mutation, not exposed separately
// - Mutated only on the single control-flow path of the interactive loop,
//   so no locking

package curator

import (
	"github.com/google/uuid"

	"github.com/shivaylamba/curator/content"
	"github.com/shivaylamba/curator/search"
)

// Session holds the mutable state of one interactive run: topic, platform,
// the per-type content cache, and the most recent search results. Created
// once per process and discarded on exit.
type Session struct {
	id       string
	topic    string
	platform content.Platform
	cache    *content.Cache
	results  []search.Result

	lastType content.Type
	hasLast  bool
}

// NewSession creates a session for a topic and platform.
func NewSession(topic string, platform content.Platform) *Session {
	return &Session{
		id:       uuid.NewString(),
		topic:    topic,
		platform: platform,
		cache:    content.NewCache(),
	}
}

// ID returns the unique id of this run (for logging).
func (s *Session) ID() string {
	return s.id
}

// Topic returns the active topic.
func (s *Session) Topic() string {
	return s.topic
}

// SetTopic changes the active topic. Any change atomically clears the
// content cache and discards prior search results, keeping cached content
// consistent with the current topic. Setting the same topic again is a
// no-op.
func (s *Session) SetTopic(topic string) {
	if topic == s.topic {
		return
	}
	s.topic = topic
	s.cache.Clear()
	s.results = nil
	s.hasLast = false
}

// Platform returns the active platform.
func (s *Session) Platform() content.Platform {
	return s.platform
}

// SetPlatform changes the target platform. Cached content is untouched:
// content is cached per type for the current topic, independent of the
// platform wording in the prompt.
func (s *Session) SetPlatform(platform content.Platform) {
	s.platform = platform
}

// Cache returns the content cache.
func (s *Session) Cache() *content.Cache {
	return s.cache
}

// Results returns the search results from the last successful search.
func (s *Session) Results() []search.Result {
	return s.results
}

// SetResults stores search results for the current topic.
func (s *Session) SetResults(results []search.Result) {
	s.results = results
}

// LastGenerated returns the most recently generated content type, if any
// content has been generated for the current topic.
func (s *Session) LastGenerated() (content.Type, bool) {
	return s.lastType, s.hasLast
}

// noteGenerated records the most recently generated type.
func (s *Session) noteGenerated(t content.Type) {
	s.lastType = t
	s.hasLast = true
}
