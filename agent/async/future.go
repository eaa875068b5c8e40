/*
Package async offers a Future type to consume findy-wrapper-go result channels.
The wrapper returns every libindy call result through a findy.Channel. Future
reads the channel once, caches the dto.Result, and offers typed helpers to
read handles and strings from it.
*/
package async

import (
	"sync"

	"github.com/findy-network/findy-wrapper-go"
	"github.com/findy-network/findy-wrapper-go/dto"
)

type State uint32

const (
	empty State = iota
	triggered
	Consumed
)

type Future struct {
	On State
	V  interface{}
	ch findy.Channel
	lo sync.Mutex
}

// NewFuture changes the existing findy.Channel to a Future.
func NewFuture(ch findy.Channel) *Future {
	f := &Future{}
	f.SetChan(ch)
	return f
}

// value returns actual result object from findy.Channel. The first call
// blocks until the channel delivers.
func (f *Future) value() interface{} {
	f.lo.Lock()
	defer f.lo.Unlock()
	if f.On == triggered {
		r := <-f.ch
		f.On = Consumed
		f.V = r
	}
	return f.V
}

func (f *Future) IsEmpty() bool {
	f.lo.Lock()
	defer f.lo.Unlock()
	return f.On == empty
}

// SetChan sets the existing findy.Channel to this Future. A previous unread
// result is drained first.
func (f *Future) SetChan(ch findy.Channel) {
	f.lo.Lock()
	defer f.lo.Unlock()
	if f.On == triggered {
		<-f.ch
	}
	f.ch = ch
	f.On = triggered
}

func (f *Future) Result() (dtoResult *dto.Result) {
	pseudo := f.value()
	if pseudo != nil {
		r := pseudo.(dto.Result)
		dtoResult = &r
	}
	return
}

// Err returns the error of the result, or nil when the call succeeded or the
// Future is empty.
func (f *Future) Err() error {
	r := f.Result()
	if r == nil {
		return nil
	}
	return r.Err()
}

// ErrCode returns the libindy error code of the result, 0 for success.
func (f *Future) ErrCode() int {
	r := f.Result()
	if r == nil {
		return 0
	}
	return r.ErrCode()
}

func (f *Future) Int() (i int) {
	r := f.Result()
	if r != nil {
		i = r.Handle()
	}
	return
}

func (f *Future) Strs() (s1, s2, s3 string) {
	r := f.Result()
	if r != nil {
		s1 = r.Str1()
		s2 = r.Str2()
		s3 = r.Str3()
	}
	return
}

func (f *Future) Str1() string {
	str1, _, _ := f.Strs()
	return str1
}

func (f *Future) Str2() string {
	_, str2, _ := f.Strs()
	return str2
}
