package questionnaire

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthlab-ai/persim/pkg/llm"
	"github.com/synthlab-ai/persim/pkg/models"
)

type fakeGateway struct {
	doc   *llm.QuestionnaireDoc
	err   error
	brief models.BusinessBrief
}

func (f *fakeGateway) GenerateQuestionnaire(_ context.Context, brief models.BusinessBrief) (*llm.QuestionnaireDoc, error) {
	f.brief = brief
	return f.doc, f.err
}

func intPtr(v int) *int { return &v }

func testBrief() models.BusinessBrief {
	return models.BusinessBrief{
		BusinessIdea:   "AI code review",
		TargetCustomer: "engineering teams",
		Problem:        "slow review cycles",
	}
}

func TestBuildFlattensPhasesInOrder(t *testing.T) {
	gw := &fakeGateway{doc: &llm.QuestionnaireDoc{
		PrimaryStakeholders: []llm.StakeholderDoc{
			{
				Name:                        "Developers",
				Description:                 "daily users",
				ProblemDiscoveryQuestions:   []string{"P1", "P2"},
				SolutionValidationQuestions: []string{"S1"},
				FollowUpQuestions:           []string{"F1"},
			},
		},
		SecondaryStakeholders: []llm.StakeholderDoc{
			{Name: "Managers", ProblemDiscoveryQuestions: []string{"M1"}},
		},
	}}

	q, err := NewBuilder(gw).Build(context.Background(), testBrief())
	require.NoError(t, err)

	require.Len(t, q.Stakeholders.Primary, 1)
	dev := q.Stakeholders.Primary[0]
	assert.Equal(t, "primary_1", dev.ID)
	assert.Equal(t, "Developers", dev.Name)
	assert.Equal(t, []string{"P1", "P2", "S1", "F1"}, dev.Questions,
		"phases must concatenate in discovery, validation, follow-up order")

	require.Len(t, q.Stakeholders.Secondary, 1)
	assert.Equal(t, "secondary_1", q.Stakeholders.Secondary[0].ID)
}

func TestBuildSkipsBlankQuestionsAndNamelessStakeholders(t *testing.T) {
	gw := &fakeGateway{doc: &llm.QuestionnaireDoc{
		PrimaryStakeholders: []llm.StakeholderDoc{
			{
				Name:                        "Developers",
				ProblemDiscoveryQuestions:   []string{"  ", "P1", ""},
				SolutionValidationQuestions: []string{"\t"},
				FollowUpQuestions:           []string{" F1 "},
			},
			{Name: "   ", ProblemDiscoveryQuestions: []string{"orphan question"}},
		},
	}}

	q, err := NewBuilder(gw).Build(context.Background(), testBrief())
	require.NoError(t, err)
	require.Len(t, q.Stakeholders.Primary, 1)
	assert.Equal(t, []string{"P1", "F1"}, q.Stakeholders.Primary[0].Questions)
}

func TestBuildHonoursExplicitIndex(t *testing.T) {
	gw := &fakeGateway{doc: &llm.QuestionnaireDoc{
		PrimaryStakeholders: []llm.StakeholderDoc{
			{Name: "A", Index: intPtr(3), ProblemDiscoveryQuestions: []string{"Q"}},
			{Name: "B", ProblemDiscoveryQuestions: []string{"Q"}},
		},
	}}

	q, err := NewBuilder(gw).Build(context.Background(), testBrief())
	require.NoError(t, err)
	require.Len(t, q.Stakeholders.Primary, 2)
	assert.Equal(t, "primary_3", q.Stakeholders.Primary[0].ID, "explicit index wins")
	assert.Equal(t, "primary_2", q.Stakeholders.Primary[1].ID, "position fallback is 1-based")
}

func TestBuildTimeEstimate(t *testing.T) {
	gw := &fakeGateway{doc: &llm.QuestionnaireDoc{
		PrimaryStakeholders: []llm.StakeholderDoc{
			{Name: "A", ProblemDiscoveryQuestions: []string{"1", "2", "3", "4", "5"}},
		},
	}}

	q, err := NewBuilder(gw).Build(context.Background(), testBrief())
	require.NoError(t, err)
	assert.Equal(t, "~15m", q.TimeEstimate)
}

func TestBuildRejectsIncompleteBrief(t *testing.T) {
	gw := &fakeGateway{}
	_, err := NewBuilder(gw).Build(context.Background(), models.BusinessBrief{BusinessIdea: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target_customer")
	assert.Empty(t, gw.brief.BusinessIdea, "gateway must not be called for an invalid brief")
}

func TestBuildGatewayErrorIsFatal(t *testing.T) {
	gw := &fakeGateway{err: errors.New("model exploded")}
	_, err := NewBuilder(gw).Build(context.Background(), testBrief())
	require.Error(t, err)
}

func TestBuildNoUsableStakeholdersFails(t *testing.T) {
	gw := &fakeGateway{doc: &llm.QuestionnaireDoc{}}
	_, err := NewBuilder(gw).Build(context.Background(), testBrief())
	require.Error(t, err)
}
