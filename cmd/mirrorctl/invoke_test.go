package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/mirrorskill/config"
	"github.com/hupe1980/mirrorskill/core"
	"github.com/hupe1980/mirrorskill/internal/testutil"
	"github.com/hupe1980/mirrorskill/mirror"
)

func writeEnvelope(t *testing.T, dir, name string, env *core.RequestEnvelope) string {
	t.Helper()
	data, err := json.Marshal(env)
	require.NoError(t, err)
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

func runCLI(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	t.Setenv(config.EnvBucket, "")
	t.Setenv(config.EnvPersistLearned, "")
	outputFormat, persistLearned, verbose = "json", false, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestRoutesCommand(t *testing.T) {
	out := runCLI(t, "", "routes")
	assert.True(t, strings.HasPrefix(out, "1. Launch\n"))
	assert.Contains(t, out, "8. IntentReflector")
}

func TestInvokeCommand_Stdin(t *testing.T) {
	data, err := json.Marshal(testutil.NewEnvelopeBuilder().Launch().Build())
	require.NoError(t, err)

	out := runCLI(t, string(data), "invoke")
	var resp core.ResponseEnvelope
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, mirror.SpeechWelcome, resp.Response.SpeechText())
}

func TestInvokeCommand_MultiTurnSharesStore(t *testing.T) {
	dir := t.TempDir()
	teach := writeEnvelope(t, dir, "teach.json", testutil.NewEnvelopeBuilder().
		Intent(mirror.IntentSaveCharacteristic).
		Slot(mirror.SlotName, "Evil Queen").
		Slot(mirror.SlotCharacteristic, "ugliest").
		Build())
	ask := writeEnvelope(t, dir, "ask.json", testutil.NewEnvelopeBuilder().
		Intent(mirror.IntentWhoIsTheXofAll).
		Slot(mirror.SlotCharacteristic, "ugliest").
		Build())

	out := runCLI(t, "", "invoke", "--persist-learned", "-o", "yaml", teach, ask)

	dec := yaml.NewDecoder(strings.NewReader(out))
	var first, second map[string]any
	require.NoError(t, dec.Decode(&first))
	require.NoError(t, dec.Decode(&second))

	speech := func(doc map[string]any) string {
		resp := doc["response"].(map[string]any)
		return resp["outputSpeech"].(map[string]any)["text"].(string)
	}
	assert.Contains(t, speech(first), "Evil Queen is the ugliest next time")
	assert.Equal(t, "Evil Queen is the ugliest of all", speech(second))
}

func TestInvokeCommand_BadFormat(t *testing.T) {
	t.Setenv(config.EnvBucket, "")
	rootCmd.SetArgs([]string{"invoke", "-o", "xml"})
	rootCmd.SetIn(strings.NewReader("{}"))
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	assert.Error(t, rootCmd.Execute())
}
