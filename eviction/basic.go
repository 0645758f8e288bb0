package eviction

// basic tracks keys but never picks a victim.
type basic struct {
	set map[string]struct{}
}

func newBasic() *basic {
	return &basic{set: make(map[string]struct{})}
}

func (b *basic) OnGet(string)    {}
func (b *basic) OnUpdate(string) {}
func (b *basic) OnPut(k string)  { b.set[k] = struct{}{} }
func (b *basic) Evict() string   { return "" }
func (b *basic) Len() int        { return len(b.set) }
