package adapter

import (
	"errors"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordingOpener(command string, args []string, goos string) (*Opener, *[]string) {
	var got []string
	o := NewOpener(command, args, NullLogger())
	o.goos = goos
	o.start = func(cmd *exec.Cmd, exited func(error)) error {
		got = cmd.Args
		return nil
	}
	return o, &got
}

func TestOpener_SystemDefault(t *testing.T) {
	tests := []struct {
		goos string
		want []string
	}{
		{"darwin", []string{"open", "http://img/a.jpg"}},
		{"linux", []string{"xdg-open", "http://img/a.jpg"}},
		{"freebsd", []string{"xdg-open", "http://img/a.jpg"}},
		{"windows", []string{"rundll32", "url.dll,FileProtocolHandler", "http://img/a.jpg"}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			o, got := recordingOpener("", nil, tt.goos)
			require.NoError(t, o.Open("http://img/a.jpg"))
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestOpener_ConfiguredViewer(t *testing.T) {
	o, got := recordingOpener("feh", []string{"--scale-down"}, "linux")

	require.NoError(t, o.Open("http://img/a.jpg"))
	assert.Equal(t, []string{"feh", "--scale-down", "--", "http://img/a.jpg"}, *got)
}

func TestOpener_AmpersandStaysInsideOneArgument(t *testing.T) {
	o, got := recordingOpener("", nil, "windows")

	require.NoError(t, o.Open("http://x/y.png&calc.exe"))
	assert.Equal(t, []string{"rundll32", "url.dll,FileProtocolHandler", "http://x/y.png&calc.exe"}, *got)
	assert.NotContains(t, *got, "cmd")
}

func TestOpener_RejectsNonHTTPURLs(t *testing.T) {
	for _, raw := range []string{
		"file:///etc/passwd",
		"--exec=touch /tmp/x",
		"-x",
		"javascript:alert(1)",
		"/relative/thumb.jpg",
		"http:///no-host.jpg",
		"   ",
	} {
		t.Run(raw, func(t *testing.T) {
			o, got := recordingOpener("feh", nil, "linux")

			assert.Error(t, o.Open(raw))
			assert.Nil(t, *got, "no process started")
		})
	}
}

func TestOpener_StartFailure(t *testing.T) {
	o, _ := recordingOpener("", nil, "linux")
	o.start = func(cmd *exec.Cmd, exited func(error)) error { return errors.New("not found") }

	err := o.Open("http://img/a.jpg")
	assert.ErrorContains(t, err, "not found")
}

func TestStartDetached_ReapsProcess(t *testing.T) {
	// Re-run the test binary with no tests selected; it exits at once
	cmd := exec.Command(os.Args[0], "-test.run=^$")

	exited := make(chan error, 1)
	require.NoError(t, startDetached(cmd, func(err error) { exited <- err }))

	select {
	case err := <-exited:
		assert.NoError(t, err)
		assert.NotNil(t, cmd.ProcessState)
	case <-time.After(10 * time.Second):
		t.Fatal("process was not waited on")
	}
}

func TestSplitCommand(t *testing.T) {
	cmd, args := SplitCommand("  feh --scale-down  -x ")
	assert.Equal(t, "feh", cmd)
	assert.Equal(t, []string{"--scale-down", "-x"}, args)

	cmd, args = SplitCommand("")
	assert.Empty(t, cmd)
	assert.Nil(t, args)
}
