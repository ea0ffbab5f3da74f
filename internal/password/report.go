package password

// BarLabels are the captions of the five indicator segments, lowest first.
var BarLabels = [5]string{"Too Short", "Weak", "Fair", "Strong", "Very Strong"}

var barColors = [5]string{"red", "orange", "yellow", "green", "emerald"}

const inactiveColor = "gray"

// Bar is one segment of the strength indicator.
type Bar struct {
	Active bool   `json:"active"`
	Color  string `json:"color"`
	Label  string `json:"label"`
}

// Bars renders the five-segment indicator for a level.
func Bars(l Level) [5]Bar {
	var bars [5]Bar
	for i := range bars {
		active := l >= Level(i+1)
		color := inactiveColor
		if active {
			color = barColors[i]
		}
		bars[i] = Bar{Active: active, Color: color, Label: BarLabels[i]}
	}
	return bars
}

// Requirement is one line of the password checklist.
type Requirement struct {
	Key  string `json:"key"`
	Text string `json:"text"`
	Met  bool   `json:"met"`
}

// Checklist lists the requirements in display order. It reads only c, so it
// always agrees with the score computed from the same Checks.
func Checklist(c Checks) []Requirement {
	return []Requirement{
		{Key: "length", Text: "8+ characters", Met: c.MinLength},
		{Key: "uppercase", Text: "One uppercase", Met: c.Uppercase},
		{Key: "lowercase", Text: "One lowercase", Met: c.Lowercase},
		{Key: "number", Text: "One number", Met: c.Digit},
		{Key: "special", Text: "One special char", Met: c.Special},
	}
}

// Report is everything the form needs to redraw the strength widgets.
type Report struct {
	Checks    Checks        `json:"checks"`
	Score     float64       `json:"score"`
	Level     Level         `json:"level"`
	Text      string        `json:"text"`
	Tone      string        `json:"tone"`
	Bars      [5]Bar        `json:"bars"`
	Checklist []Requirement `json:"checklist"`
}

// Analyze builds a Report for pwd from a single evaluation.
func Analyze(pwd string) Report {
	c := Evaluate(pwd)
	score := c.Score()
	level := LevelFor(pwd, score)
	return Report{
		Checks:    c,
		Score:     score,
		Level:     level,
		Text:      Text(level),
		Tone:      Tone(score),
		Bars:      Bars(level),
		Checklist: Checklist(c),
	}
}
