// Package eventbus dispatches events to subscribers whose function signature
// matches the published arguments.
package eventbus

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"
)

var (
	ErrNoSubscribers        = errors.New("eventbus: no matching subscribers")
	ErrInvalidHandlerReturn = errors.New("eventbus: invalid handler return signature")
)

type EventBus interface {
	Publish(args ...any)
	// PublishE is Publish that collects handler errors and panics.
	PublishE(args ...any) error
	Subscribe(handler any)
	Unsubscribe(handler any)
	Clear()
	SubscribersCount() int
}

type subscriber struct {
	handler any
}

type bus struct {
	log         logrus.FieldLogger
	subscribers []subscriber
}

func New(log logrus.FieldLogger) EventBus {
	return &bus{log: log}
}

// MatchSignature reports whether handler can be called with args.
func MatchSignature(handler any, args []any) bool {
	t := reflect.TypeOf(handler)
	if t == nil || t.Kind() != reflect.Func {
		return false
	}
	if t.NumIn() != len(args) {
		return false
	}
	for i, arg := range args {
		param := t.In(i)
		if arg == nil {
			if param.Kind() != reflect.Interface && param.Kind() != reflect.Ptr {
				return false
			}
			continue
		}
		argType := reflect.TypeOf(arg)
		if param.Kind() == reflect.Interface {
			if !argType.Implements(param) {
				return false
			}
			continue
		}
		if !argType.AssignableTo(param) {
			return false
		}
	}
	return true
}

func callArgs(args []any, t reflect.Type) []reflect.Value {
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			in[i] = reflect.Zero(t.In(i))
			continue
		}
		in[i] = reflect.ValueOf(arg)
	}
	return in
}

func (b *bus) Publish(args ...any) {
	handled := false
	for _, s := range b.subscribers {
		if !MatchSignature(s.handler, args) {
			continue
		}
		v := reflect.ValueOf(s.handler)
		func() {
			defer func() {
				if r := recover(); r != nil && b.log != nil {
					b.log.Errorf("eventbus: handler %s panicked with args %v: %v", v.Type(), args, r)
				}
			}()
			v.Call(callArgs(args, v.Type()))
			handled = true
		}()
	}
	if !handled && b.log != nil {
		b.log.Warnf("eventbus.Publish: no matching subscribers for %v", args)
	}
}

func (b *bus) PublishE(args ...any) error {
	handled := false
	var errs []error
	errType := reflect.TypeOf((*error)(nil)).Elem()

	for _, s := range b.subscribers {
		if !MatchSignature(s.handler, args) {
			continue
		}
		handled = true
		v := reflect.ValueOf(s.handler)
		func() {
			defer func() {
				if r := recover(); r != nil {
					errs = append(errs, fmt.Errorf("eventbus: handler %s panicked: %v", v.Type(), r))
				}
			}()
			out := v.Call(callArgs(args, v.Type()))
			switch {
			case len(out) == 0:
				return
			case len(out) != 1:
				errs = append(errs, fmt.Errorf("%w: handler %s returned %d values", ErrInvalidHandlerReturn, v.Type(), len(out)))
			case out[0].Type() != errType:
				errs = append(errs, fmt.Errorf("%w: handler %s returns %s", ErrInvalidHandlerReturn, v.Type(), out[0].Type()))
			case !out[0].IsNil():
				errs = append(errs, out[0].Interface().(error))
			}
		}()
	}
	if !handled {
		return ErrNoSubscribers
	}
	return errors.Join(errs...)
}

func (b *bus) Subscribe(handler any) {
	if t := reflect.TypeOf(handler); t == nil || t.Kind() != reflect.Func {
		panic("eventbus: handler must be a function")
	}
	b.subscribers = append(b.subscribers, subscriber{handler: handler})
}

// Unsubscribe removes the first subscriber registered with the same function.
// Functions are matched by code pointer, so closures created from one literal
// are indistinguishable; subscribe top-level functions when you need this.
func (b *bus) Unsubscribe(handler any) {
	want := reflect.ValueOf(handler)
	if want.Kind() != reflect.Func {
		return
	}
	for i, s := range b.subscribers {
		if reflect.ValueOf(s.handler).Pointer() == want.Pointer() {
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)
			return
		}
	}
}

func (b *bus) Clear() {
	b.subscribers = nil
}

func (b *bus) SubscribersCount() int {
	return len(b.subscribers)
}
