package query

// Question pairs a query with its visualization settings. Like queries,
// questions are persistent-style values.
type Question struct {
	query    Query
	settings map[string]any
}

// NewQuestion returns a question over q with no settings.
func NewQuestion(q Query) *Question {
	return &Question{query: q}
}

// Query returns the question's current query.
func (q *Question) Query() Query {
	return q.query
}

// SetQuery returns a copy of the question holding the given query.
func (q *Question) SetQuery(query Query) *Question {
	clone := *q
	clone.query = query
	return &clone
}

// Settings returns the question's visualization settings. The returned map
// is the question's own; callers must not mutate it.
func (q *Question) Settings() map[string]any {
	return q.settings
}

// Setting returns a single visualization setting, nil when unset.
func (q *Question) Setting(key string) any {
	return q.settings[key]
}

// WithSettings returns a copy of the question with its settings replaced.
func (q *Question) WithSettings(settings map[string]any) *Question {
	clone := *q
	clone.settings = make(map[string]any, len(settings))
	for k, v := range settings {
		clone.settings[k] = v
	}
	return &clone
}

// WithSetting returns a copy of the question with one setting set.
func (q *Question) WithSetting(key string, value any) *Question {
	clone := *q
	clone.settings = make(map[string]any, len(q.settings)+1)
	for k, v := range q.settings {
		clone.settings[k] = v
	}
	clone.settings[key] = value
	return &clone
}
