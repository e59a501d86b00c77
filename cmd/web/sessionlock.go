package main

import (
	"net/http"
	"sync"
)

// sessionLocks hands out one mutex per session token. Entries are dropped once nobody holds or waits for them.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	sync.Mutex
	refs int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{
		mu:    sync.Mutex{},
		locks: make(map[string]*sessionLock),
	}
}

// lock blocks until token is free and returns the function that releases it.
func (l *sessionLocks) lock(token string) func() {
	l.mu.Lock()
	sl, ok := l.locks[token]
	if !ok {
		sl = &sessionLock{} //nolint:exhaustruct // zero mutex
		l.locks[token] = sl
	}
	sl.refs++
	l.mu.Unlock()

	sl.Lock()
	return func() {
		sl.Unlock()
		l.mu.Lock()
		sl.refs--
		if sl.refs == 0 {
			delete(l.locks, token)
		}
		l.mu.Unlock()
	}
}

// len is the number of tokens currently locked or waited for.
func (l *sessionLocks) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

// serializeSession runs the requests of one browser session one at a time so that the session load, the dispatch,
// and the session commit of a request are not interleaved with another request's. It must wrap LoadAndSave.
// Requests without a session cookie have no state to lose and pass straight through.
func (app *application) serializeSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(app.sessionManager.Cookie.Name)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}
		unlock := app.sessionLocks.lock(cookie.Value)
		defer unlock()
		next.ServeHTTP(w, r)
	})
}
