package checklist

import (
	"fineract-prequalification/internal/domain/checklist"
	"fineract-prequalification/internal/domain/policy"
)

type RunSummary struct {
	PrequalificationID int64                  `json:"prequalification_id"`
	Status             string                 `json:"status"`
	GroupResults       int                    `json:"group_results"`
	IndividualResults  int                    `json:"individual_results"`
	Verdicts           map[policy.Verdict]int `json:"verdicts"`
}

type ResultDTO = checklist.ResultView
