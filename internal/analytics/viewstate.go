package analytics

// ViewState is the explicit list/analytics view-state machine: which status
// tab is active, where the paginator sits, which date window and bucket
// granularity are selected. Transitions are pure; rendering concerns never
// touch this struct.
type ViewState struct {
	Tab            string      `json:"tab"` // FilterAll or a status value
	Page           int         `json:"page"`
	PageSize       int         `json:"page_size"`
	Preset         DatePreset  `json:"preset"`
	CustomStart    string      `json:"custom_start"`
	CustomEnd      string      `json:"custom_end"`
	Granularity    Granularity `json:"granularity"`
	SelectedBucket int         `json:"selected_bucket"` // -1 when nothing selected
}

// NewViewState returns the initial console view state.
func NewViewState() ViewState {
	return ViewState{
		Tab:            FilterAll,
		Page:           0,
		PageSize:       10,
		Preset:         PresetAll,
		Granularity:    GranularityDaily,
		SelectedBucket: -1,
	}
}

// WithTab switches the status tab and resets the page index.
func (s ViewState) WithTab(tab string) ViewState {
	s.Tab = tab
	s.Page = 0
	return s
}

// WithPage moves the paginator.
func (s ViewState) WithPage(page int) ViewState {
	if page < 0 {
		page = 0
	}
	s.Page = page
	return s
}

// WithPageSize changes the page size and resets the page index so the view
// never lands on a nonexistent page.
func (s ViewState) WithPageSize(size int) ViewState {
	if size <= 0 {
		size = 10
	}
	s.PageSize = size
	s.Page = 0
	return s
}

// WithPreset selects a relative date window, clearing any custom range.
func (s ViewState) WithPreset(preset DatePreset) ViewState {
	s.Preset = preset
	if preset != PresetCustom {
		s.CustomStart = ""
		s.CustomEnd = ""
	}
	s.Page = 0
	return s
}

// WithCustomRange enters custom date mode with the given bounds.
func (s ViewState) WithCustomRange(start, end string) ViewState {
	s.Preset = PresetCustom
	s.CustomStart = start
	s.CustomEnd = end
	s.Page = 0
	return s
}

// WithGranularity switches the bucket layout and clears any bucket selection.
func (s ViewState) WithGranularity(granularity Granularity) ViewState {
	s.Granularity = granularity
	s.SelectedBucket = -1
	return s
}

// WithSelectedBucket records the drill-down target.
func (s ViewState) WithSelectedBucket(index int) ViewState {
	if index < 0 {
		index = -1
	}
	s.SelectedBucket = index
	return s
}
