package sink

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dendrascience/djsum/digest"
	"github.com/dendrascience/djsum/dispatch"
)

func TestTextLayout(t *testing.T) {
	var buf bytes.Buffer
	s := NewText(&buf)

	require.NoError(t, s.Write(dispatch.Result{
		Path:      "dir/file.txt",
		Size:      11,
		Algorithm: digest.MD5,
		Sum:       "5eb63bbbe01eeed093cb22bb8f5acdc3",
	}))
	require.NoError(t, s.Write(dispatch.Result{
		Path:      "a.zip::b.txt",
		Size:      3,
		Algorithm: digest.MD5,
		Sum:       "d41d8cd98f00b204e9800998ecf8427e",
	}))
	require.NoError(t, s.Flush())

	want := "5eb63bbbe01eeed093cb22bb8f5acdc3  dir/file.txt\n" +
		"d41d8cd98f00b204e9800998ecf8427e  a.zip::b.txt\n"
	assert.Equal(t, want, buf.String())
}

func TestCSVLayout(t *testing.T) {
	var buf bytes.Buffer
	s := NewCSV(&buf)

	require.NoError(t, s.Write(dispatch.Result{
		Path:      "dir/file.txt",
		Size:      11,
		Algorithm: digest.SHA1,
		Sum:       "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed",
	}))
	require.NoError(t, s.Flush())

	want := "path,size,algorithm,digest\n" +
		"dir/file.txt,11,sha1,2aae6c35c94fcfb415dbe95f408b9ce91ee846ed\n"
	assert.Equal(t, want, buf.String())
}

func TestCSVQuoting(t *testing.T) {
	var buf bytes.Buffer
	s := NewCSV(&buf)

	require.NoError(t, s.Write(dispatch.Result{
		Path:      `weird,"name".txt`,
		Size:      0,
		Algorithm: digest.MD5,
		Sum:       "d41d8cd98f00b204e9800998ecf8427e",
	}))
	require.NoError(t, s.Flush())

	assert.Contains(t, buf.String(), `"weird,""name"".txt"`)
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	s, err := New("text", &buf)
	require.NoError(t, err)
	assert.IsType(t, &Text{}, s)

	s, err = New("csv", &buf)
	require.NoError(t, err)
	assert.IsType(t, &CSV{}, s)

	_, err = New("json", &buf)
	assert.Error(t, err)
}
