// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"sync"

	"github.com/stretchr/testify/mock"
	"github.com/xmidt-org/asyncevent/async"
)

type mockSubscriber struct {
	mock.Mock
}

func (m *mockSubscriber) Handle(arg string) *async.Result {
	r, _ := m.Called(arg).Get(0).(*async.Result)
	return r
}

func (m *mockSubscriber) Fire() *async.Result {
	r, _ := m.Called().Get(0).(*async.Result)
	return r
}

// callOrder records the order in which subscribers are started
type callOrder struct {
	lock  sync.Mutex
	names []string
}

func (co *callOrder) record(name string) {
	co.lock.Lock()
	co.names = append(co.names, name)
	co.lock.Unlock()
}

func (co *callOrder) get() []string {
	co.lock.Lock()
	defer co.lock.Unlock()
	return append([]string(nil), co.names...)
}

// recording returns a subscriber that records its name and argument, then returns r
func (co *callOrder) recording(name string, r *async.Result) Func[string] {
	return func(arg string) *async.Result {
		co.record(name + "(" + arg + ")")
		return r
	}
}
