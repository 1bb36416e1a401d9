package collision

// Command is a mutation the engine can apply. The set is closed: only the
// types in this file implement it.
type Command[ID comparable] interface {
	apply(e *Engine[ID])
}

type (
	// SetCenter moves body Index so its center is Center.
	SetCenter[ID comparable] struct {
		Index  int
		Center Vec2
	}

	// SetPosition moves body Index so its top-left corner is Pos.
	SetPosition[ID comparable] struct {
		Index int
		Pos   Vec2
	}

	// SetHalfExtent resizes body Index around its center.
	SetHalfExtent[ID comparable] struct {
		Index      int
		HalfExtent Vec2
	}

	// SetSize resizes body Index to a full width and height.
	SetSize[ID comparable] struct {
		Index int
		Size  Vec2
	}

	SetVelocity[ID comparable] struct {
		Index    int
		Velocity Vec2
	}

	SetClassification[ID comparable] struct {
		Index int
		Solid bool
		Fixed bool
	}

	SetID[ID comparable] struct {
		Index int
		ID    ID
	}

	RemoveBody[ID comparable] struct {
		Index int
	}

	// AddBody appends a new body at index Len().
	AddBody[ID comparable] struct {
		Center     Vec2
		HalfExtent Vec2
		Velocity   Vec2
		Solid      bool
		Fixed      bool
		ID         ID
	}
)

func (c SetCenter[ID]) apply(e *Engine[ID])     { e.SetCenter(c.Index, c.Center) }
func (c SetPosition[ID]) apply(e *Engine[ID])   { e.SetPosition(c.Index, c.Pos) }
func (c SetHalfExtent[ID]) apply(e *Engine[ID]) { e.SetHalfExtent(c.Index, c.HalfExtent) }
func (c SetSize[ID]) apply(e *Engine[ID])       { e.SetSize(c.Index, c.Size) }
func (c SetVelocity[ID]) apply(e *Engine[ID])   { e.SetVelocity(c.Index, c.Velocity) }
func (c SetID[ID]) apply(e *Engine[ID])         { e.SetID(c.Index, c.ID) }
func (c RemoveBody[ID]) apply(e *Engine[ID])    { e.RemoveBody(c.Index) }

func (c SetClassification[ID]) apply(e *Engine[ID]) {
	e.SetClassification(c.Index, c.Solid, c.Fixed)
}

func (c AddBody[ID]) apply(e *Engine[ID]) {
	e.AddBody(c.Center, c.HalfExtent, c.Velocity, c.Solid, c.Fixed, c.ID)
}

// Apply runs commands in order. Index arguments are checked against the store
// as it is when each command runs, so a RemoveBody shifts the targets of the
// commands after it.
func (e *Engine[ID]) Apply(cmds ...Command[ID]) {
	for _, c := range cmds {
		c.apply(e)
	}
}
