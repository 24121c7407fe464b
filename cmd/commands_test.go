package cmd

import (
	"testing"

	"github.com/mouse-blink/turtle/internal/adapter"
	"github.com/mouse-blink/turtle/internal/domain"
	domainmocks "github.com/mouse-blink/turtle/internal/domain/mocks"
	m "github.com/mouse-blink/turtle/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMetricsCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.EXPECT().Metrics(domain.MetricsArgs{
		Source:   m.ProgramSource{Sample: "basic"},
		ShowText: true,
	}).Return(nil).Once()

	_, err := executeWithMock(t, mockWorkflow, newMetricsCmd(), "metrics", "--sample", "basic", "--text")
	require.NoError(t, err)
}

func TestExportCmd(t *testing.T) {
	t.Run("explicit format", func(t *testing.T) {
		mockWorkflow := domainmocks.NewMockWorkflow(t)

		mockWorkflow.EXPECT().Export(mock.MatchedBy(func(args domain.ExportArgs) bool {
			return args.Source == m.ProgramSource{Path: "walk.txt"} &&
				args.Format == adapter.FormatYAML &&
				args.Output == "" &&
				args.Out != nil
		})).Return(nil).Once()

		_, err := executeWithMock(t, mockWorkflow, newExportCmd(), "export", "walk.txt", "--format", "yml")
		require.NoError(t, err)
	})

	t.Run("format inferred later from output", func(t *testing.T) {
		mockWorkflow := domainmocks.NewMockWorkflow(t)

		mockWorkflow.EXPECT().Export(mock.MatchedBy(func(args domain.ExportArgs) bool {
			return args.Format == "" && args.Output == "walk.html"
		})).Return(nil).Once()

		_, err := executeWithMock(t, mockWorkflow, newExportCmd(), "export", "walk.txt", "-o", "walk.html")
		require.NoError(t, err)
	})

	t.Run("unknown format", func(t *testing.T) {
		mockWorkflow := domainmocks.NewMockWorkflow(t)

		_, err := executeWithMock(t, mockWorkflow, newExportCmd(), "export", "walk.txt", "--format", "pdf")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported format")
	})
}

func TestSamplesCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().Samples().Return(nil).Once()

	_, err := executeWithMock(t, mockWorkflow, newSamplesCmd(), "samples")
	require.NoError(t, err)
}

func TestViewCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().View(domain.ViewArgs{Reports: ".turtle-reports"}).Return(nil).Once()

	_, err := executeWithMock(t, mockWorkflow, newViewCmd(), "view")
	require.NoError(t, err)
}

func TestViewCmd_RejectsArgs(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	_, err := executeWithMock(t, mockWorkflow, newViewCmd(), "view", "extra")
	require.Error(t, err)
}
