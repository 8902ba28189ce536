package container

import (
	"log/slog"

	"github.com/yaman9600/LinkedList/common/options"
)

// WithCursorCache 开启遍历游标缓存
// 顺序访问时从上一次定位的节点继续向后查找 任何结构变更都会使缓存失效
func WithCursorCache[T any]() options.Option[LinkedList[T]] {
	return options.WrapperOptions[LinkedList[T]](func(l *LinkedList[T]) {
		l.cursorEnabled = true
	})
}

// WithLogger 设置日志 用于记录被拒绝的操作(Debug 级别)
// 默认使用 slog.Default()
func WithLogger[T any](logger *slog.Logger) options.Option[LinkedList[T]] {
	return options.WrapperOptions[LinkedList[T]](func(l *LinkedList[T]) {
		l.logger = logger
	})
}
