package corvid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCulprit_UsesInnermostFrame(t *testing.T) {
	rec := Record{Logger: "root"}
	trace := &Trace{Frames: []Frame{
		{Module: "app/outer", Function: "main"},
		{Module: "app/inner", Function: "make_record"},
	}}

	assert.Equal(t, "root in make_record", resolveCulprit(rec, trace))
}

func TestResolveCulprit_ModuleWhenLoggerEmpty(t *testing.T) {
	rec := Record{}
	trace := &Trace{Frames: []Frame{{Module: "app/inner", Function: "run"}}}

	assert.Equal(t, "app/inner in run", resolveCulprit(rec, trace))
}

func TestResolveCulprit_FallsBackToRecordSite(t *testing.T) {
	rec := Record{Logger: "root", Module: "app", Function: "make_record"}

	assert.Equal(t, "root in make_record", resolveCulprit(rec, nil))
}

func TestResolveCulprit_RecordSiteModuleWhenLoggerEmpty(t *testing.T) {
	rec := Record{Module: "app", Function: "make_record"}

	assert.Equal(t, "app in make_record", resolveCulprit(rec, nil))
}

func TestResolveCulprit_NothingKnown(t *testing.T) {
	assert.Equal(t, "", resolveCulprit(Record{}, nil))
	assert.Equal(t, "", resolveCulprit(Record{}, &Trace{}))
}
