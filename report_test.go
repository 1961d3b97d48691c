package solid

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func Test_Report_FromAnalysis(t *testing.T) {
	az := NewAnalyzer()
	r := az.Analyze(3.14159265358979, 20)
	rep := NewReport(r)

	assert.Equal(t, r.ID.String(), rep.ID)
	assert.Equal(t, "pi", rep.Constant)
	assert.Equal(t, "quantum", rep.Barrier)
	assert.Equal(t, r.Value.Display(), rep.Value)
	assert.Equal(t, r.Value.Confidence, rep.Confidence)

	data, err := yaml.Marshal(rep)
	require.NoError(t, err)
	var back Report
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, rep.ID, back.ID)
	assert.Equal(t, rep.Value, back.Value)

	jdata, err := json.Marshal(rep)
	require.NoError(t, err)
	assert.Contains(t, string(jdata), `"barrier":"quantum"`)
}

func Test_Report_HaltedPipeline(t *testing.T) {
	r := NewResult(1.5, 10)
	r.Explanation = "phase not completed"
	rep := NewReport(r)
	assert.Empty(t, rep.Value)
	assert.Equal(t, "phase not completed", rep.Explanation)
}
