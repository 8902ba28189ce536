package container

// node 单向链表节点
type node[T any] struct {
	value T        // 节点数据
	next  *node[T] // 下一个节点 nil 表示链表尾
}

// release 断开节点引用 便于回收
func (n *node[T]) release() {
	var zero T
	n.value = zero
	n.next = nil
}
