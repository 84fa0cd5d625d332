package x11

import (
	"errors"
	"testing"

	"github.com/jezek/xgb/xproto"
	"github.com/seanly/ldtp2/internal/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDisplay(sent *[]fakeInput, sendErr error) *Display {
	return &Display{
		send: func(in fakeInput) error {
			if sendErr != nil {
				return sendErr
			}
			*sent = append(*sent, in)
			return nil
		},
		geometry: func() (int, int, error) { return 1920, 1080, nil },
	}
}

func TestTranslate(t *testing.T) {
	motion := fakeInput{Type: xproto.MotionNotify, X: 10, Y: 20}
	tests := []struct {
		ev   platform.EventType
		want []fakeInput
	}{
		{platform.AbsoluteMove, []fakeInput{motion}},
		{platform.RelativeMove, []fakeInput{{Type: xproto.MotionNotify, Detail: 1, X: 10, Y: 20}}},
		{platform.ButtonOneClick, []fakeInput{
			motion,
			{Type: xproto.ButtonPress, Detail: 1},
			{Type: xproto.ButtonRelease, Detail: 1},
		}},
		{platform.ButtonThreeClick, []fakeInput{
			motion,
			{Type: xproto.ButtonPress, Detail: 3},
			{Type: xproto.ButtonRelease, Detail: 3},
		}},
		{platform.ButtonOneDoubleClick, []fakeInput{
			motion,
			{Type: xproto.ButtonPress, Detail: 1},
			{Type: xproto.ButtonRelease, Detail: 1},
			{Type: xproto.ButtonPress, Detail: 1},
			{Type: xproto.ButtonRelease, Detail: 1},
		}},
		{platform.ButtonTwoPress, []fakeInput{motion, {Type: xproto.ButtonPress, Detail: 2}}},
		{platform.ButtonOneRelease, []fakeInput{motion, {Type: xproto.ButtonRelease, Detail: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.ev.String(), func(t *testing.T) {
			got, err := translate(10, 20, tt.ev)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslate_Rejects(t *testing.T) {
	_, err := translate(1, 1, platform.OtherEvent("b9c"))
	assert.ErrorIs(t, err, platform.ErrUnsupportedEvent)

	_, err = translate(1, 1, platform.EventType{})
	assert.ErrorIs(t, err, platform.ErrUnsupportedEvent)

	_, err = translate(40000, 1, platform.AbsoluteMove)
	assert.Error(t, err)
}

func TestEmitMouseEvent(t *testing.T) {
	var sent []fakeInput
	d := newTestDisplay(&sent, nil)

	require.NoError(t, d.EmitMouseEvent(5, 6, platform.ButtonThreeClick))
	assert.Len(t, sent, 3)
	assert.Equal(t, int16(5), sent[0].X)
	assert.Equal(t, int16(6), sent[0].Y)
}

func TestEmitMouseEvent_WrapsFailures(t *testing.T) {
	var sent []fakeInput
	boom := errors.New("BadValue")
	d := newTestDisplay(&sent, boom)

	err := d.EmitMouseEvent(5, 6, platform.ButtonOneClick)
	var ie *platform.InjectionError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, platform.ButtonOneClick, ie.Event)
	assert.ErrorIs(t, err, boom)

	err = d.EmitMouseEvent(5, 6, platform.OtherEvent("zz"))
	assert.ErrorIs(t, err, platform.ErrUnsupportedEvent)
}

func TestGetScreenGeometry(t *testing.T) {
	var sent []fakeInput
	d := newTestDisplay(&sent, nil)

	geom, err := d.GetScreenGeometry()
	require.NoError(t, err)
	assert.Equal(t, platform.ScreenGeometry{MinX: 0, MinY: 0, MaxX: 1919, MaxY: 1079}, geom)

	d.geometry = func() (int, int, error) { return 0, 0, errors.New("gone") }
	_, err = d.GetScreenGeometry()
	assert.Error(t, err)
}
