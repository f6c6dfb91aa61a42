package domain

import "fmt"

// Notification 校验违规收集器：逐字段检查并累积，最后统一转换为一个错误
type Notification struct {
	errors []string
}

func (n *Notification) Add(msg string) {
	n.errors = append(n.errors, msg)
}

func (n *Notification) Addf(format string, args ...any) {
	n.Add(fmt.Sprintf(format, args...))
}

func (n *Notification) HasErrors() bool {
	return len(n.errors) > 0
}

// Errors 返回违规列表副本
func (n *Notification) Errors() []string {
	out := make([]string, len(n.errors))
	copy(out, n.errors)
	return out
}

// Err 无违规时返回 nil，否则返回携带全部违规的 *ValidationError
func (n *Notification) Err(entity string) error {
	if !n.HasErrors() {
		return nil
	}
	return &ValidationError{Entity: entity, Errors: n.Errors()}
}
