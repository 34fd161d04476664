package ports

import "github.com/bnema/repara-cli/internal/domain"

type Notifier interface {
	Notify(notice domain.Notice)
}

type NotifierFunc func(domain.Notice)

func (f NotifierFunc) Notify(notice domain.Notice) {
	f(notice)
}
