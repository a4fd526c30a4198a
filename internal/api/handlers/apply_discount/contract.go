package apply_discount

import "context"

type ClientService interface {
	ApplyDiscount(ctx context.Context, id int64, discount int) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
