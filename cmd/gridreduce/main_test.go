// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridreduce/cim"
	"github.com/katalvlaran/gridreduce/config"
	"github.com/katalvlaran/gridreduce/report"
)

const records = `[
  {"mrid": "N1", "cimclass": "cim:ConnectivityNode", "fullobject": {}},
  {"mrid": "N2", "cimclass": "cim:ConnectivityNode", "fullobject": {}},
  {"mrid": "L1", "cimclass": "cim:ACLineSegment",
   "fullobject": {"cim:ACLineSegment.r": 1, "cim:ACLineSegment.x": 2}},
  {"mrid": "L1.T1", "cimclass": "cim:Terminal",
   "fullobject": {"cim:Terminal.ConductingEquipment": "L1", "cim:Terminal.ConnectivityNode": "N1"}},
  {"mrid": "L1.T2", "cimclass": "cim:Terminal",
   "fullobject": {"cim:Terminal.ConductingEquipment": "L1", "cim:Terminal.ConnectivityNode": "N2"}}
]`

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestRun_Text(t *testing.T) {
	path := writeTemp(t, "records.json", records)
	out, _, err := execute(t, path)
	require.NoError(t, err)

	assert.Contains(t, out, "buses: 2\n")
	assert.Contains(t, out, "  [0.2-0.4i -0.2+0.4i]\n")
	assert.Contains(t, out, "run: ")
}

func TestRun_JSONWithLogs(t *testing.T) {
	path := writeTemp(t, "records.json", records)
	out, logs, err := execute(t, "--format", "json", "--log-level", "info", path)
	require.NoError(t, err)

	var rep report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.Len(t, rep.Buses, 2)
	assert.Equal(t, report.Complex{Re: -0.2, Im: 0.4}, rep.Admittance[0][1])
	assert.NotEmpty(t, rep.RunID)

	assert.Contains(t, logs, "run_id")
	assert.Contains(t, logs, rep.RunID)
}

func TestRun_ConfigFile(t *testing.T) {
	path := writeTemp(t, "records.json", records)
	cfgPath := writeTemp(t, "gridreduce.yaml", "output:\n  format: json\n")
	out, _, err := execute(t, "--config", cfgPath, path)
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))
}

func TestRun_Failures(t *testing.T) {
	_, _, err := execute(t)
	require.Error(t, err)

	_, _, err = execute(t, filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	bad := writeTemp(t, "bad.json", `[{"cimclass": "cim:ConnectivityNode"}]`)
	_, _, err = execute(t, bad)
	require.ErrorIs(t, err, cim.ErrMalformed)

	path := writeTemp(t, "records.json", records)
	_, _, err = execute(t, "--format", "xml", path)
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := newLogger(config.LogConfig{Level: "info", Format: config.FormatJSON}, &buf)
	require.NoError(t, err)
	log.Debug("hidden")
	log.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	_, err = newLogger(config.LogConfig{Level: "loud"}, &buf)
	require.Error(t, err)
}
