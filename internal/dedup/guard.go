// Package dedup защищает формы от двойной отправки.
//
// Исходный блог держал одну глобальную переменную "последний отправленный
// текст" на весь процесс - она протекала между пользователями: отправка
// одного могла подавить отправку другого. Вместо этого выдаем одноразовый
// токен, привязанный к конкретной форме (сессия + ресурс): токен выдается
// при рендере формы и гасится при приеме, повторная отправка той же формы
// приходит с погашенным токеном и отбрасывается.
package dedup

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type entry struct {
	scope   string
	expires time.Time
}

type Guard struct {
	mu     sync.Mutex
	tokens map[string]entry
	ttl    time.Duration
	now    func() time.Time // для тестов
}

func NewGuard(ttl time.Duration) *Guard {
	return &Guard{
		tokens: make(map[string]entry),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue выдает одноразовый токен для формы scope
// (например "comment:42:7" - пост 42, пользователь 7)
func (g *Guard) Issue(scope string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.sweepLocked()

	token := uuid.NewString()
	g.tokens[token] = entry{
		scope:   scope,
		expires: g.now().Add(g.ttl),
	}

	return token
}

// Consume гасит токен. false - токен неизвестен, просрочен, выдан для
// другой формы или уже погашен (двойная отправка)
func (g *Guard) Consume(scope, token string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.tokens[token]
	if !ok {
		return false
	}

	delete(g.tokens, token)

	if e.scope != scope {
		return false
	}
	if g.now().After(e.expires) {
		return false
	}

	return true
}

// sweepLocked убирает просроченные токены (вызывается под мьютексом)
func (g *Guard) sweepLocked() {
	now := g.now()
	for token, e := range g.tokens {
		if now.After(e.expires) {
			delete(g.tokens, token)
		}
	}
}
