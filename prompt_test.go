package imgfetch

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStdinPrompterAccepts(t *testing.T) {
	out := &bytes.Buffer{}
	p := &StdinPrompter{In: strings.NewReader("y\n"), Out: out}

	assert.True(t, p.Confirm("Continue anyway?"))
	assert.Equal(t, "Continue anyway? (y/N): ", out.String())
}

func TestStdinPrompterCaseInsensitive(t *testing.T) {
	p := &StdinPrompter{In: strings.NewReader("Y\n"), Out: &bytes.Buffer{}}
	assert.True(t, p.Confirm("Overwrite?"))
}

func TestStdinPrompterDeclines(t *testing.T) {
	p := &StdinPrompter{In: strings.NewReader("n\n"), Out: &bytes.Buffer{}}
	assert.False(t, p.Confirm("Overwrite?"))
}

func TestStdinPrompterAnythingElseDeclines(t *testing.T) {
	p := &StdinPrompter{In: strings.NewReader("yes\n"), Out: &bytes.Buffer{}}
	assert.False(t, p.Confirm("Continue download?"))
}

func TestStdinPrompterEOFDeclines(t *testing.T) {
	p := &StdinPrompter{In: strings.NewReader(""), Out: &bytes.Buffer{}}
	assert.False(t, p.Confirm("Continue anyway?"))
}

func TestStdinPrompterSequentialAnswers(t *testing.T) {
	p := &StdinPrompter{In: strings.NewReader("y\nn\n"), Out: &bytes.Buffer{}}
	assert.True(t, p.Confirm("first"))
	assert.False(t, p.Confirm("second"))
}

func TestAcceptAll(t *testing.T) {
	assert.True(t, AcceptAll{}.Confirm("anything"))
}
