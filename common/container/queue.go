package container

// Queue 队列 线程不安全
type Queue[T any] struct {
	// 队列数据 采用单向链表
	// 尾部入队 头部出队 均为 O(1) 且不需要扩缩容拷贝
	list LinkedList[T]
}

// NewQueue 创建队列
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Empty 判断队列是否为空
func (q *Queue[T]) Empty() bool {
	return q.list.Empty()
}

// Size 获取队列长度
func (q *Queue[T]) Size() int {
	return q.list.Size()
}

// Clear 清空队列
func (q *Queue[T]) Clear() {
	q.list.Clear()
}

// Value 获取队列数据 队首在前
func (q *Queue[T]) Value() []T {
	return q.list.Value()
}

// Push 入队
func (q *Queue[T]) Push(val T) {
	q.list.Append(val)
}

// Pop 出队 队列为空时返回零值
func (q *Queue[T]) Pop() (val T) {
	val, _ = q.TryPop()
	return
}

// TryPop 出队 队列为空时 ok 为 false
func (q *Queue[T]) TryPop() (val T, ok bool) {
	if q.Empty() {
		return
	}
	return q.list.RemoveFirst()
}

// Peek 查看队首元素 不出队
func (q *Queue[T]) Peek() (val T, ok bool) {
	return q.list.First()
}
