package container

import (
	"log/slog"

	"github.com/yaman9600/LinkedList/common/options"
)

const (
	reasonOutOfRange = "index out of range"
	reasonEmpty      = "container is empty"
)

// LinkedList 单向链表 线程不安全 并发访问需要调用方自行加锁
// 零值即为可用的空链表
// Append + RemoveFirst 均为 O(1) 适合 FIFO 场景
// RemoveLast 需要找到倒数第二个节点 为 O(n)
type LinkedList[T any] struct {
	head  *node[T] // 头节点
	tail  *node[T] // 尾节点 用于 O(1) 追加
	count int      // 节点数量

	// 遍历游标缓存 结构变更时失效
	cursorEnabled bool
	cursorValid   bool
	cursorIndex   int
	cursorNode    *node[T]

	logger *slog.Logger
}

// NewLinkedList 创建链表
func NewLinkedList[T any](opts ...options.Option[LinkedList[T]]) *LinkedList[T] {
	l := &LinkedList[T]{}
	options.ApplyOptions(l, opts...)
	return l
}

// Empty 判断链表是否为空
func (l *LinkedList[T]) Empty() bool {
	return l.count <= 0
}

// Size 获取链表长度
func (l *LinkedList[T]) Size() int {
	return l.count
}

// Value 按顺序拷贝链表数据
func (l *LinkedList[T]) Value() []T {
	values := make([]T, 0, l.count)
	for cursor := l.head; cursor != nil; cursor = cursor.next {
		values = append(values, cursor.value)
	}
	return values
}

// Get 获取下标 index 处的元素
func (l *LinkedList[T]) Get(index int) (val T, ok bool) {
	if index < 0 || index >= l.count {
		l.rejectIndex("Get", index)
		return
	}
	return l.getNode(index).value, true
}

// First 获取头部元素
func (l *LinkedList[T]) First() (val T, ok bool) {
	if l.head == nil {
		return
	}
	return l.head.value, true
}

// Last 获取尾部元素
func (l *LinkedList[T]) Last() (val T, ok bool) {
	if l.tail == nil {
		return
	}
	return l.tail.value, true
}

// Set 覆盖下标 index 处的元素 不改变链表结构
func (l *LinkedList[T]) Set(index int, val T) bool {
	if index < 0 || index >= l.count {
		l.rejectIndex("Set", index)
		return false
	}
	l.getNode(index).value = val
	return true
}

// Append 追加到链表尾
func (l *LinkedList[T]) Append(val T) bool {
	newNode := &node[T]{value: val}
	if l.tail == nil {
		// 空链表 头尾指向同一个节点
		l.head = newNode
	} else {
		l.tail.next = newNode
	}
	l.tail = newNode
	l.count++
	l.invalidateCursor()

	return true
}

// Prepend 插入到链表头
func (l *LinkedList[T]) Prepend(val T) bool {
	if l.count == 0 {
		return l.Append(val)
	}
	// 先链接旧头节点 再替换头节点
	l.head = &node[T]{value: val, next: l.head}
	l.count++
	l.invalidateCursor()

	return true
}

// InsertAt 插入到下标 index 处 原有元素依次后移
// index >= Size() 等同 Append, index <= 0 等同 Prepend
func (l *LinkedList[T]) InsertAt(index int, val T) bool {
	if index >= l.count {
		return l.Append(val)
	}
	if index <= 0 {
		return l.Prepend(val)
	}
	prev := l.getNode(index - 1)
	prev.next = &node[T]{value: val, next: prev.next}
	l.count++
	l.invalidateCursor()

	return true
}

// RemoveAt 移除并返回下标 index 处的元素
func (l *LinkedList[T]) RemoveAt(index int) (val T, ok bool) {
	if index < 0 || index >= l.count {
		l.rejectIndex("RemoveAt", index)
		return
	}
	if index == 0 {
		return l.RemoveFirst()
	}

	prev := l.getNode(index - 1)
	target := prev.next
	prev.next = target.next
	if target == l.tail {
		l.tail = prev
	}
	l.count--
	l.invalidateCursor()

	val = target.value
	target.release()
	return val, true
}

// RemoveFirst 移除并返回头部元素 O(1)
func (l *LinkedList[T]) RemoveFirst() (val T, ok bool) {
	if l.count == 0 {
		l.rejectEmpty("RemoveFirst")
		return
	}
	if l.count == 1 {
		return l.RemoveLast()
	}

	oldHead := l.head
	l.head = oldHead.next
	l.count--
	l.invalidateCursor()

	val = oldHead.value
	oldHead.release()
	return val, true
}

// RemoveLast 移除并返回尾部元素
// 单向链表需要从头找到倒数第二个节点 O(n)
func (l *LinkedList[T]) RemoveLast() (val T, ok bool) {
	if l.count == 0 {
		l.rejectEmpty("RemoveLast")
		return
	}

	oldTail := l.tail
	if l.count == 1 {
		l.head = nil
		l.tail = nil
		l.count = 0
	} else {
		prev := l.getNode(l.count - 2)
		prev.next = nil
		l.tail = prev
		l.count--
	}
	l.invalidateCursor()

	val = oldTail.value
	oldTail.release()
	return val, true
}

// Clear 清空链表 从头到尾逐个断开节点 空链表调用也是安全的
func (l *LinkedList[T]) Clear() {
	for cursor := l.head; cursor != nil; {
		next := cursor.next
		cursor.release()
		cursor = next
	}
	l.head = nil
	l.tail = nil
	l.count = 0
	l.invalidateCursor()
}

// getNode 查找下标 index 处的节点 调用方保证 0 <= index < count
func (l *LinkedList[T]) getNode(index int) *node[T] {
	if index == l.count-1 {
		return l.tail
	}

	pos := 0
	cursor := l.head
	// 命中游标缓存 从缓存节点继续向后查找
	if l.cursorEnabled && l.cursorValid && l.cursorIndex <= index {
		pos = l.cursorIndex
		cursor = l.cursorNode
	}
	for pos < index && cursor != nil {
		cursor = cursor.next
		pos++
	}

	if l.cursorEnabled && cursor != nil {
		l.cursorIndex = index
		l.cursorNode = cursor
		l.cursorValid = true
	}
	return cursor
}

// invalidateCursor 结构变更后游标缓存失效
func (l *LinkedList[T]) invalidateCursor() {
	l.cursorValid = false
	l.cursorIndex = 0
	l.cursorNode = nil
}

func (l *LinkedList[T]) rejectIndex(method string, index int) {
	l.log().Debug("[LinkedList] "+method+" "+reasonOutOfRange, slog.Int("index", index), slog.Int("size", l.count))
}

func (l *LinkedList[T]) rejectEmpty(method string) {
	l.log().Debug("[LinkedList] " + method + " " + reasonEmpty)
}

func (l *LinkedList[T]) log() *slog.Logger {
	if l.logger != nil {
		return l.logger
	}
	return slog.Default()
}
