package detour

import (
	"container/heap"
	"navquery/common"
)

const (
	DT_NODE_OPEN            = 0x01
	DT_NODE_CLOSED          = 0x02
	DT_NODE_PARENT_DETACHED = 0x04 // parent of the node is not adjacent. Found using raycast.
)

type DtNodeIndex int

const (
	DT_NODE_PARENT_BITS    = 24
	DT_NODE_STATE_BITS     = 2
	DT_MAX_STATES_PER_NODE = 1 << DT_NODE_STATE_BITS // number of extra states per node. See DtNode::state
)

type DtNode struct {
	Pos       []float32 ///< Position of the node.
	Cost      float32   ///< Cost from the start node to this node.
	Total     float32   ///< Cost plus the heuristic estimate to the goal (equal to Cost in searches without a goal).
	Pidx      uint32    ///<  parent node.
	State     uint32    ///< extra state information. A polyRef can have multiple nodes with different extra info. see DT_MAX_STATES_PER_NODE
	Flags     uint32    ///< Node flags. A combination of DtNodeFlags.
	Id        DtPolyRef ///< Polygon ref the node corresponds to.
	poolIndex DtNodeIndex // 1-based slot index within the owning DtNodePool, 0 if unset.
	_index    int         //堆中移除和更新对象用
}

func NewDtNode() *DtNode {
	return &DtNode{
		Pidx:  DT_NODE_PARENT_BITS,
		State: DT_NODE_STATE_BITS,
		Flags: 3,
		Pos:   make([]float32, 3),
	}
}

func (node *DtNode) SetIndex(index int) {
	node._index = index
}

func (node *DtNode) GetIndex() int {
	return node._index
}

type NodeQueueIndex interface {
	SetIndex(index int)
	GetIndex() int
}
type NodeQueue[T any] interface {
	Peek() T         //查看堆顶，不会移除元素
	Poll() T         //从堆顶弹出一个元素
	Update(any) bool //更新元素
	Remove(any) bool //移除一个元素
	Offer(T)         //插入一个元素
	Reset()
	Empty() bool
}

// 优先级队列
type nodeQueue[T any] struct {
	data []T
	less func(t1, t2 T) bool
}

func NewNodeQueue[T any](less func(t1, t2 T) bool) NodeQueue[T] {
	q := &nodeQueue[T]{less: less}
	heap.Init(q)
	return q
}
func (q *nodeQueue[T]) Reset() {
	q.data = []T{}
}

// 查看堆顶
func (q *nodeQueue[T]) Peek() T {
	return q.data[0]
}
func (q *nodeQueue[T]) Poll() T { return heap.Pop(q).(T) } //从堆顶弹出一个元素
// 更新元素
func (q *nodeQueue[T]) Update(value any) bool {

	if v, ok := value.(NodeQueueIndex); ok {
		heap.Fix(q, v.GetIndex())
		return true
	}
	return false

}

func (q *nodeQueue[T]) Remove(value any) bool {
	if v, ok := value.(NodeQueueIndex); ok {
		heap.Remove(q, v.GetIndex())
		return true
	}
	return false

}                                     //移除一个元素
func (q *nodeQueue[T]) Offer(value T) { heap.Push(q, value) } //插入一个元素

func (q *nodeQueue[T]) Push(x any) {
	q.data = append(q.data, x.(T))
	if v, ok := x.(NodeQueueIndex); ok {
		v.SetIndex(len(q.data) - 1)
	}
}
func (q *nodeQueue[T]) Pop() (res any) {
	n := len(q.data)
	res = q.data[n-1]
	q.data = q.data[:n-1]
	if v, ok := res.(NodeQueueIndex); ok {
		v.SetIndex(0)
	}
	return res
}
func (q *nodeQueue[T]) Len() int {
	return len(q.data)
}
func (q *nodeQueue[T]) Empty() bool {
	return q.Len() == 0
}
func (q *nodeQueue[T]) Less(i, j int) bool { return q.less(q.data[i], q.data[j]) }
func (q *nodeQueue[T]) Swap(i, j int) {
	var vi any = q.data[i]
	var vj any = q.data[j]
	if v, ok := vi.(NodeQueueIndex); ok {
		v.SetIndex(j)
	}
	if v, ok := vj.(NodeQueueIndex); ok {
		v.SetIndex(i)
	}
	q.data[i], q.data[j] = q.data[j], q.data[i]

}

func dtHashRef(a DtPolyRef) int32 {
	a += ^(a << 15)
	a ^= (a >> 10)
	a += (a << 3)
	a ^= (a >> 6)
	a += ^(a << 11)
	a ^= (a >> 16)
	return int32(a)
}

const (
	DT_NULL_IDX = DtNodeIndex(^0)
)

type DtNodePool struct {
	m_nodes      []*DtNode
	m_first      []DtNodeIndex
	m_next       []DtNodeIndex
	m_maxNodes   int32
	m_hashSize   int32
	m_nodeCount  int32
	m_dirty      []int32 // buckets touched since the last Clear, so Clear only resets what was used.
	m_bucketUsed []bool  // parallel to m_first; dedups m_dirty.
}

func NewDtNodePool(maxNodes, hashSize int32) *DtNodePool {
	p := &DtNodePool{
		m_maxNodes: maxNodes,
		m_hashSize: hashSize,
	}
	common.AssertTrue(common.NextPow2(uint32(p.m_hashSize)) == uint32(p.m_hashSize))
	// pidx is special as 0 means "none" and 1 is the first node. For that reason
	// we have 1 fewer nodes available than the number of values it can contain.
	common.AssertTrue(p.m_maxNodes > 0 && DtNodeIndex(p.m_maxNodes) != DT_NULL_IDX && p.m_maxNodes <= (1<<DT_NODE_PARENT_BITS)-1)
	p.m_nodes = make([]*DtNode, p.m_maxNodes)
	p.m_next = make([]DtNodeIndex, p.m_maxNodes)
	p.m_first = make([]DtNodeIndex, hashSize)
	p.m_bucketUsed = make([]bool, hashSize)
	for i := range p.m_next {
		p.m_next[i] = DT_NULL_IDX
	}
	for i := range p.m_first {
		p.m_first[i] = DT_NULL_IDX
	}
	return p
}

// GetNodeIdx returns the node's 1-based slot index within the pool, or 0 if
// node is nil. The node carries its own slot index (stamped in GetNode), so
// this is O(1) rather than a linear scan of the node table.
func (p *DtNodePool) GetNodeIdx(node *DtNode) int {
	if node == nil {
		return 0
	}
	return int(node.poolIndex)
}

func (p *DtNodePool) GetNodeAtIdx(idx int) *DtNode {
	if idx == 0 {
		return nil
	}
	return p.m_nodes[idx-1]
}

func (p *DtNodePool) GetMaxNodes() int32 { return p.m_maxNodes }

func (p *DtNodePool) GetHashSize() int32              { return p.m_hashSize }
func (p *DtNodePool) GetFirst(bucket int) DtNodeIndex { return p.m_first[bucket] }
func (p *DtNodePool) GetNext(i int) DtNodeIndex       { return p.m_next[i] }
func (p *DtNodePool) GetNodeCount() int32             { return p.m_nodeCount }

// Clear resets the pool for reuse. Only the hash buckets actually touched
// since the last Clear are reset (m_dirty), giving O(nodes_used) rather than
// O(hashSize); m_next entries for freed slots are unreachable once their
// bucket head is reset, so they don't need clearing.
func (p *DtNodePool) Clear() {
	for _, bucket := range p.m_dirty {
		p.m_first[bucket] = DT_NULL_IDX
		p.m_bucketUsed[bucket] = false
	}
	p.m_dirty = p.m_dirty[:0]
	p.m_nodeCount = 0
}

func (p *DtNodePool) markBucketDirty(bucket int32) {
	if !p.m_bucketUsed[bucket] {
		p.m_bucketUsed[bucket] = true
		p.m_dirty = append(p.m_dirty, bucket)
	}
}

func (p *DtNodePool) FindNodes(id DtPolyRef, maxNodes int) (nodes []*DtNode, n int) {
	bucket := dtHashRef(id) & (p.m_hashSize - 1)
	i := p.m_first[bucket]
	for i != DT_NULL_IDX {
		if p.m_nodes[i].Id == id {
			if n >= maxNodes {
				return nodes, n
			}
			nodes = append(nodes, p.m_nodes[i])
			n++
		}
		i = p.m_next[i]
	}

	return nodes, n
}

func (p *DtNodePool) GetNode(id DtPolyRef, states ...uint32) *DtNode {
	state := uint32(0)
	if len(states) > 0 {
		state = states[0]
	}
	bucket := dtHashRef(id) & (p.m_hashSize - 1)
	i := p.m_first[bucket]
	for i != DT_NULL_IDX {
		if p.m_nodes[i].Id == id && p.m_nodes[i].State == state {
			return p.m_nodes[i]
		}

		i = p.m_next[i]
	}

	if p.m_nodeCount >= p.m_maxNodes {
		return nil
	}

	i = DtNodeIndex(p.m_nodeCount)
	p.m_nodeCount++

	// Init node
	node := p.m_nodes[i]
	if node == nil {
		node = NewDtNode()
		p.m_nodes[i] = node
	}
	node.Pidx = 0
	node.Cost = 0
	node.Total = 0
	node.Id = id
	node.State = state
	node.Flags = 0
	node.poolIndex = i + 1

	p.markBucketDirty(bucket)
	p.m_next[i] = p.m_first[bucket]
	p.m_first[bucket] = i

	return node
}

func (p *DtNodePool) FindNode1(id DtPolyRef, state uint32) *DtNode {
	bucket := dtHashRef(id) & (p.m_hashSize - 1)
	i := p.m_first[bucket]
	for i != DT_NULL_IDX {
		if p.m_nodes[i].Id == id && p.m_nodes[i].State == state {
			return p.m_nodes[i]
		}

		i = p.m_next[i]
	}
	return nil
}
