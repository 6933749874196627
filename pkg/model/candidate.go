package model

// Problem 索引化的优化问题
// 员工和时段在创建时被映射到稳定的整数下标，
// 求解过程中所有候选解都通过下标访问，避免字符串键查找
type Problem struct {
	Staff  []*StaffMember
	Demand []*DemandSlot

	staffIndex map[string]int
	slotIndex  map[string]int
}

// NewProblem 创建索引化问题
func NewProblem(staff []*StaffMember, demand []*DemandSlot) *Problem {
	p := &Problem{
		Staff:      staff,
		Demand:     demand,
		staffIndex: make(map[string]int, len(staff)),
		slotIndex:  make(map[string]int, len(demand)),
	}
	for i, s := range staff {
		p.staffIndex[s.ID] = i
	}
	for j, d := range demand {
		p.slotIndex[d.TimeSlot] = j
	}
	return p
}

// StaffCount 员工数量
func (p *Problem) StaffCount() int { return len(p.Staff) }

// SlotCount 时段数量
func (p *Problem) SlotCount() int { return len(p.Demand) }

// Dims 候选解的标量维度总数（工时 + 满意度 + 覆盖）
func (p *Problem) Dims() int { return 2*len(p.Staff) + len(p.Demand) }

// StaffIndex 按ID查找员工下标
func (p *Problem) StaffIndex(id string) (int, bool) {
	i, ok := p.staffIndex[id]
	return i, ok
}

// SlotIndex 按时段ID查找下标
func (p *Problem) SlotIndex(slotID string) (int, bool) {
	j, ok := p.slotIndex[slotID]
	return j, ok
}

// Candidate 候选解（一次员工到班次的分配提案）
// 三组标量按固定下标存储:
//   - Hours[i]:        员工i的周工时 (≥0)
//   - Satisfaction[i]: 员工i的满意度 ([0,1])
//   - Coverage[j]:     时段j的覆盖人数 (≥0)
type Candidate struct {
	Hours        []float64 `json:"hours"`
	Satisfaction []float64 `json:"satisfaction"`
	Coverage     []float64 `json:"coverage"`
}

// NewCandidate 创建全零候选解
func NewCandidate(staffCount, slotCount int) *Candidate {
	return &Candidate{
		Hours:        make([]float64, staffCount),
		Satisfaction: make([]float64, staffCount),
		Coverage:     make([]float64, slotCount),
	}
}

// Clone 深拷贝候选解
func (c *Candidate) Clone() *Candidate {
	clone := &Candidate{
		Hours:        make([]float64, len(c.Hours)),
		Satisfaction: make([]float64, len(c.Satisfaction)),
		Coverage:     make([]float64, len(c.Coverage)),
	}
	copy(clone.Hours, c.Hours)
	copy(clone.Satisfaction, c.Satisfaction)
	copy(clone.Coverage, c.Coverage)
	return clone
}

// Dims 标量维度总数
func (c *Candidate) Dims() int {
	return len(c.Hours) + len(c.Satisfaction) + len(c.Coverage)
}

// IsEmpty 检查候选解是否为空
func (c *Candidate) IsEmpty() bool {
	return c == nil || c.Dims() == 0
}

// Dim 按展平下标读取标量
// 下标顺序: [0,S) 工时, [S,2S) 满意度, [2S,2S+D) 覆盖
func (c *Candidate) Dim(d int) float64 {
	s := len(c.Hours)
	switch {
	case d < s:
		return c.Hours[d]
	case d < 2*s:
		return c.Satisfaction[d-s]
	default:
		return c.Coverage[d-2*s]
	}
}

// SetDim 按展平下标写入标量
func (c *Candidate) SetDim(d int, v float64) {
	s := len(c.Hours)
	switch {
	case d < s:
		c.Hours[d] = v
	case d < 2*s:
		c.Satisfaction[d-s] = v
	default:
		c.Coverage[d-2*s] = v
	}
}

// AddDim 按展平下标累加标量
func (c *Candidate) AddDim(d int, delta float64) {
	c.SetDim(d, c.Dim(d)+delta)
}
