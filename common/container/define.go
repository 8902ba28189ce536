package container

var (
	// 断言 检查实现容器接口
	_ Sequence[int]  = (*LinkedList[int])(nil)
	_ Container[int] = (*Queue[int])(nil)
)

// Container 容器接口
type Container[T any] interface {
	Empty() bool
	Size() int
	Clear()
	Value() []T
}

// Sequence 按下标访问的序列容器接口
// 失败统一通过 bool 返回 不使用元素零值作为哨兵
type Sequence[T any] interface {
	Container[T]
	Get(index int) (T, bool)
	Set(index int, val T) bool
	Append(val T) bool
	Prepend(val T) bool
	InsertAt(index int, val T) bool
	RemoveAt(index int) (T, bool)
	RemoveFirst() (T, bool)
	RemoveLast() (T, bool)
}
