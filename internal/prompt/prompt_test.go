package prompt

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockapi "signup/internal/api/mock"
	"signup/internal/form"
)

// scriptedDriver answers prompts from fixed values and records notices.
type scriptedDriver struct {
	inputs   []string
	password string
	picks    []int
	infos    []string
	failOn   string
}

func (d *scriptedDriver) Input(_ context.Context, message string) (string, error) {
	if message == d.failOn {
		return "", ErrInterrupted
	}
	v := d.inputs[0]
	d.inputs = d.inputs[1:]
	return v, nil
}

func (d *scriptedDriver) Password(context.Context, string) (string, error) {
	return d.password, nil
}

func (d *scriptedDriver) Select(_ context.Context, _ string, options []string) (int, error) {
	v := d.picks[0]
	d.picks = d.picks[1:]
	return v, nil
}

func (d *scriptedDriver) Info(_ context.Context, message string) error {
	d.infos = append(d.infos, message)
	return nil
}

func options() form.Options {
	return form.Options{
		Occupations: []form.Occupation{"Engineer", "Pilot"},
		States:      []form.State{form.NewState("Alaska"), form.NewState("California")},
	}
}

func TestRun_Submits(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockapi.NewMockClient(ctrl)

	want := form.Fields{
		Name:       "Ada Lovelace",
		Email:      "ada@example.com",
		Password:   "secret123",
		Occupation: "Engineer",
		State:      form.NewState("California"),
	}.Payload()
	client.EXPECT().Submit(gomock.Any(), want).Return(form.Account{Name: "Ada Lovelace"}, nil).Times(1)

	d := &scriptedDriver{
		inputs:   []string{"Ada Lovelace", "ada@example.com"},
		password: "secret123",
		picks:    []int{0, 1},
	}
	acc, err := Run(context.Background(), d, options(), client)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", acc.Name)
	require.Len(t, d.infos, 1)
	assert.Contains(t, d.infos[0], "Welcome Ada Lovelace!")
}

func TestRun_EmptyOccupationLabelIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockapi.NewMockClient(ctrl)
	client.EXPECT().Submit(gomock.Any(), gomock.Any()).Times(0)

	opts := options()
	opts.Occupations = []form.Occupation{""}
	d := &scriptedDriver{inputs: []string{"a", "b"}, picks: []int{0, 0}}

	_, err := Run(context.Background(), d, opts, client)
	require.True(t, errors.Is(err, form.ErrMissingOccupation))
	require.Len(t, d.infos, 1)
	assert.Contains(t, d.infos[0], "occupation")
}

func TestRun_SubmitFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockapi.NewMockClient(ctrl)
	client.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(form.Account{}, errors.New("boom"))

	d := &scriptedDriver{inputs: []string{"a", "b"}, picks: []int{1, 0}}
	_, err := Run(context.Background(), d, options(), client)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Empty(t, d.infos)
}

func TestRun_Interrupted(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockapi.NewMockClient(ctrl)

	d := &scriptedDriver{inputs: []string{"a"}, failOn: "Email"}
	_, err := Run(context.Background(), d, options(), client)
	require.True(t, errors.Is(err, ErrInterrupted))
}

func TestTranslateSurveyErr(t *testing.T) {
	assert.NoError(t, translateSurveyErr(nil))
	other := errors.New("tty")
	assert.Equal(t, other, translateSurveyErr(other))
}

func TestSurveyDriver_SelectWithoutOptions(t *testing.T) {
	idx, err := NewSurveyDriver().Select(context.Background(), "Choose your state", nil)
	require.NoError(t, err)
	assert.Equal(t, -1, idx)
}

func TestRun_EmptyOptionListReportsMissingSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockapi.NewMockClient(ctrl)

	d := &scriptedDriver{
		inputs:   []string{"Ada", "ada@example.com"},
		password: "pw",
		picks:    []int{-1, 0},
	}
	_, err := Run(context.Background(), d, form.Options{States: options().States}, client)
	require.ErrorIs(t, err, form.ErrMissingOccupation)
	assert.Equal(t, []string{"You must select an occupation!"}, d.infos)
}
