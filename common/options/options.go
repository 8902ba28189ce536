package options

// Option 可选配置接口
type Option[T any] interface {
	Apply(t *T)
}

// WrapperOptions 函数包装为 Option
type WrapperOptions[T any] func(t *T)

// Apply 实现 Option 接口
func (opt WrapperOptions[T]) Apply(t *T) {
	opt(t)
}

// ApplyOptions 按顺序应用配置 nil 跳过
func ApplyOptions[T any](t *T, opts ...Option[T]) {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.Apply(t)
	}
}
