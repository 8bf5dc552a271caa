package models

// GamePatch is a partial game record. A nil field means the value is
// unknown, never that it should be cleared.
type GamePatch struct {
	Name        *string
	Description *string
	ReleaseDate *string
	Developer   *string
	Publisher   *string
	ReviewScore *int
	HLTBID      *int64

	CompletionTimes
}

// Merge returns a patch where every field set in other overrides p.
func (p GamePatch) Merge(other GamePatch) GamePatch {
	return GamePatch{
		Name:            pick(p.Name, other.Name),
		Description:     pick(p.Description, other.Description),
		ReleaseDate:     pick(p.ReleaseDate, other.ReleaseDate),
		Developer:       pick(p.Developer, other.Developer),
		Publisher:       pick(p.Publisher, other.Publisher),
		ReviewScore:     pick(p.ReviewScore, other.ReviewScore),
		HLTBID:          pick(p.HLTBID, other.HLTBID),
		CompletionTimes: p.CompletionTimes.merge(other.CompletionTimes),
	}
}

// Columns returns the set fields keyed by column name.
func (p GamePatch) Columns() map[string]any {
	cols := make(map[string]any)
	put(cols, "name", p.Name)
	put(cols, "description", p.Description)
	put(cols, "release_date", p.ReleaseDate)
	put(cols, "developer", p.Developer)
	put(cols, "publisher", p.Publisher)
	put(cols, "review_score", p.ReviewScore)
	put(cols, "hltb_id", p.HLTBID)
	p.CompletionTimes.columns(cols)
	return cols
}

// IsEmpty reports whether no field is set.
func (p GamePatch) IsEmpty() bool {
	return len(p.Columns()) == 0
}

// ApplyTo overlays the set fields onto g, leaving every other field as is.
func (p GamePatch) ApplyTo(g *Game) {
	if p.Name != nil {
		g.Name = *p.Name
	}
	g.Description = pick(g.Description, p.Description)
	g.ReleaseDate = pick(g.ReleaseDate, p.ReleaseDate)
	g.Developer = pick(g.Developer, p.Developer)
	g.Publisher = pick(g.Publisher, p.Publisher)
	g.ReviewScore = pick(g.ReviewScore, p.ReviewScore)
	g.HLTBID = pick(g.HLTBID, p.HLTBID)
	g.CompletionTimes = g.CompletionTimes.merge(p.CompletionTimes)
}

// TimesOnly drops everything but the HLTB fields.
func (p GamePatch) TimesOnly() GamePatch {
	return GamePatch{HLTBID: p.HLTBID, CompletionTimes: p.CompletionTimes}
}

func (t CompletionTimes) merge(o CompletionTimes) CompletionTimes {
	return CompletionTimes{
		MainAvg:              pick(t.MainAvg, o.MainAvg),
		MainPolled:           pick(t.MainPolled, o.MainPolled),
		MainMedian:           pick(t.MainMedian, o.MainMedian),
		MainRushed:           pick(t.MainRushed, o.MainRushed),
		MainLeisure:          pick(t.MainLeisure, o.MainLeisure),
		ExtraAvg:             pick(t.ExtraAvg, o.ExtraAvg),
		ExtraPolled:          pick(t.ExtraPolled, o.ExtraPolled),
		ExtraMedian:          pick(t.ExtraMedian, o.ExtraMedian),
		ExtraRushed:          pick(t.ExtraRushed, o.ExtraRushed),
		ExtraLeisure:         pick(t.ExtraLeisure, o.ExtraLeisure),
		CompletionistAvg:     pick(t.CompletionistAvg, o.CompletionistAvg),
		CompletionistPolled:  pick(t.CompletionistPolled, o.CompletionistPolled),
		CompletionistMedian:  pick(t.CompletionistMedian, o.CompletionistMedian),
		CompletionistRushed:  pick(t.CompletionistRushed, o.CompletionistRushed),
		CompletionistLeisure: pick(t.CompletionistLeisure, o.CompletionistLeisure),
	}
}

func (t CompletionTimes) columns(cols map[string]any) {
	put(cols, "main_avg", t.MainAvg)
	put(cols, "main_polled", t.MainPolled)
	put(cols, "main_median", t.MainMedian)
	put(cols, "main_rushed", t.MainRushed)
	put(cols, "main_leisure", t.MainLeisure)
	put(cols, "extra_avg", t.ExtraAvg)
	put(cols, "extra_polled", t.ExtraPolled)
	put(cols, "extra_median", t.ExtraMedian)
	put(cols, "extra_rushed", t.ExtraRushed)
	put(cols, "extra_leisure", t.ExtraLeisure)
	put(cols, "completionist_avg", t.CompletionistAvg)
	put(cols, "completionist_polled", t.CompletionistPolled)
	put(cols, "completionist_median", t.CompletionistMedian)
	put(cols, "completionist_rushed", t.CompletionistRushed)
	put(cols, "completionist_leisure", t.CompletionistLeisure)
}

// pick returns override when it is set, else base.
func pick[T any](base, override *T) *T {
	if override != nil {
		return override
	}
	return base
}

func put[T any](cols map[string]any, column string, v *T) {
	if v != nil {
		cols[column] = *v
	}
}
