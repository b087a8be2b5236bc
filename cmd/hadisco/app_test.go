package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := newApp()
	app.Reader = strings.NewReader(stdin)
	app.Writer = &stdout
	app.ErrWriter = &stderr

	err := app.Run(t.Context(), append([]string{"hadisco"}, args...))
	return stdout.String(), err
}

func TestDomains(t *testing.T) {
	out, err := run(t, "", "domains")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 28)
	assert.Contains(t, lines, "device_automation")
	assert.Contains(t, lines, "water_heater")
}

func TestTopic(t *testing.T) {
	out, err := run(t, "", "--prefix", "custom", "topic", "--domain", "sensor", "--node-id", "livingroom", "--object-id", "temperature")
	require.NoError(t, err)
	assert.Equal(t, "custom/sensor/livingroom/temperature/config\n", out)

	t.Run("Unknown Domain", func(t *testing.T) {
		_, err := run(t, "", "topic", "--domain", "toaster", "--object-id", "foo")
		require.Error(t, err)
	})
}

func TestRender(t *testing.T) {
	const descriptor = `
name: Temperature
state_topic: livingroom/temperature
unit_of_measurement: "°C"
device_class: temperature
`

	t.Run("Stdin", func(t *testing.T) {
		out, err := run(t, descriptor, "render", "--domain", "sensor")
		require.NoError(t, err)

		assert.JSONEq(t, `{
			"name": "Temperature",
			"stat_t": "livingroom/temperature",
			"unit_of_meas": "°C",
			"dev_cla": "temperature",
			"p": "sensor",
			"o": {"name": ""},
			"dev": {}
		}`, out)
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "button.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"command_topic":"foo/restart","dev_cla":null}`), 0o600))

		out, err := run(t, "", "render", "--domain", "button", path)
		require.NoError(t, err)
		assert.JSONEq(t, `{"cmd_t":"foo/restart","dev_cla":null,"p":"button","o":{"name":""},"dev":{}}`, out)
	})

	t.Run("YAML Output", func(t *testing.T) {
		out, err := run(t, "command_topic: foo/set", "render", "--domain", "switch", "--format", "yaml")
		require.NoError(t, err)

		assert.Contains(t, out, "cmd_t: foo/set")
		assert.Contains(t, out, "p: switch")
	})

	t.Run("Expanded Keys", func(t *testing.T) {
		out, err := run(t, `{"stat_t":"foo","avty":[{"t":"bar"}],"dev":{"ids":["x"]}}`, "render", "--domain", "sensor", "--expand")
		require.NoError(t, err)

		assert.JSONEq(t, `{
			"state_topic": "foo",
			"availability": [{"topic": "bar"}],
			"platform": "sensor",
			"origin": {"name": ""},
			"device": {"identifiers": ["x"]}
		}`, out)
	})

	t.Run("Invalid Format", func(t *testing.T) {
		_, err := run(t, descriptor, "render", "--domain", "sensor", "--format", "xml")
		require.Error(t, err)
	})

	t.Run("Invalid Input", func(t *testing.T) {
		_, err := run(t, "- not\n- an\n- object", "render", "--domain", "sensor")
		require.Error(t, err)
	})
}
