package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kube-rca/incident-comms/internal/model"
	"github.com/kube-rca/incident-comms/internal/sanitize"
)

// 체크 이름
const (
	CheckLength         = "Length Validation"
	CheckLeakage        = "Internal Term Leakage Detection"
	CheckRequiredFields = "Required Fields Present"
	CheckPhase          = "Phase-Specific Requirements"
)

// 메시지 길이 기준 (단어 수)
const (
	LengthRecommendedMin = 60
	LengthRecommendedMax = 150
	LengthHardMin        = 45
	LengthHardMax        = 160
)

// 키워드 집합 (소문자 부분 문자열 매칭)
var (
	ImpactKeywords       = []string{"experiencing", "may experience", "reports of", "affecting", "impacting", "issue"}
	GenericServiceTokens = []string{"service", "api", "system"}
	ActionKeywords       = []string{"investigating", "working", "team", "deployed", "monitoring", "identified", "implementing", "resolved"}
	RootCauseClaims      = []string{"caused by", "due to", "root cause", "the cause is", "because of"}
	CauseKeywords        = []string{"identified", "cause", "issue", "problem", "due to", "related to", "resulted from"}
	FixKeywords          = []string{"deployed", "fix", "implemented", "applied", "rolled out", "changes"}
	ResolutionKeywords   = []string{"resolved", "restored", "normal", "completed"}
	ApologyKeywords      = []string{"apologize", "sorry", "regret", "inconvenience"}
)

// Evaluate - 4개 규칙 기반 체크 실행 후 집계 (외부 호출 없음, 멱등)
func Evaluate(draft model.GeneratedDraft, evidence model.ExtractedEvidence) model.EvaluationResult {
	checks := []model.DeterministicCheck{
		checkLength(draft.Message),
		checkInternalLeakage(draft, evidence),
		checkRequiredFields(draft, evidence),
		checkPhaseRequirements(draft, evidence),
	}

	result := model.EvaluationResult{
		DeterministicChecks: checks,
		Warnings:            []string{},
	}
	for i := range checks {
		c := &checks[i]
		c.CheckName = sanitize.StripMarkup(c.CheckName)
		c.Details = sanitize.StripMarkup(c.Details)
		c.ActionableFix = sanitize.StripMarkupPtr(c.ActionableFix)

		switch c.Status {
		case model.StatusPass:
			result.PassedChecks++
		case model.StatusWarning:
			result.WarningChecks++
			result.Warnings = append(result.Warnings, c.CheckName+": "+c.Details)
		case model.StatusFail:
			result.FailedChecks++
			result.Warnings = append(result.Warnings, c.CheckName+": "+c.Details)
		}
	}

	switch {
	case result.FailedChecks > 0:
		result.OverallStatus = model.StatusFail
	case result.WarningChecks > 0:
		result.OverallStatus = model.StatusWarning
	default:
		result.OverallStatus = model.StatusPass
	}
	return result
}

func check(name, status, details, fix string) model.DeterministicCheck {
	c := model.DeterministicCheck{CheckName: name, Status: status, Details: details}
	if fix != "" {
		c.ActionableFix = &fix
	}
	return c
}

// 공백 기준 단어 수
func checkLength(message string) model.DeterministicCheck {
	words := len(strings.Fields(message))

	switch {
	case words >= LengthRecommendedMin && words <= LengthRecommendedMax:
		return check(CheckLength, model.StatusPass,
			fmt.Sprintf("Message length is appropriate (%d words)", words), "")
	case words >= LengthHardMin && words < LengthRecommendedMin:
		return check(CheckLength, model.StatusWarning,
			fmt.Sprintf("Message is slightly short (%d words, recommended: %d-%d)", words, LengthRecommendedMin, LengthRecommendedMax),
			fmt.Sprintf("Consider adding more detail. Currently %d words, recommended minimum is %d words.", words, LengthRecommendedMin))
	case words > LengthRecommendedMax && words <= LengthHardMax:
		return check(CheckLength, model.StatusWarning,
			fmt.Sprintf("Message is slightly long (%d words, recommended: %d-%d)", words, LengthRecommendedMin, LengthRecommendedMax),
			fmt.Sprintf("Consider condensing the message. Currently %d words, recommended maximum is %d words.", words, LengthRecommendedMax))
	case words < LengthHardMin:
		return check(CheckLength, model.StatusFail,
			fmt.Sprintf("Message is too short (%d words, minimum: %d)", words, LengthHardMin),
			fmt.Sprintf("Add more detail to the message. Currently %d words, need at least %d words (recommended: %d-%d).", words, LengthHardMin, LengthRecommendedMin, LengthRecommendedMax))
	default:
		return check(CheckLength, model.StatusFail,
			fmt.Sprintf("Message is too long (%d words, maximum: %d)", words, LengthHardMax),
			fmt.Sprintf("Significantly condense the message. Currently %d words, maximum is %d words (recommended: %d-%d).", words, LengthHardMax, LengthRecommendedMin, LengthRecommendedMax))
	}
}

// title, message 각각 대소문자 무시 부분 문자열 검색. 결과는 중복 제거 후 정렬
func checkInternalLeakage(draft model.GeneratedDraft, evidence model.ExtractedEvidence) model.DeterministicCheck {
	terms := evidence.InternalTermsToAvoid
	if len(terms) == 0 {
		return check(CheckLeakage, model.StatusPass, "No internal terms to check (list is empty)", "")
	}

	title := strings.ToLower(draft.Title)
	message := strings.ToLower(draft.Message)
	seen := map[string]struct{}{}
	var leaked []string
	add := func(entry string) {
		if _, ok := seen[entry]; ok {
			return
		}
		seen[entry] = struct{}{}
		leaked = append(leaked, entry)
	}
	for _, term := range terms {
		needle := strings.ToLower(term)
		if strings.TrimSpace(needle) == "" {
			continue
		}
		if strings.Contains(title, needle) {
			add(fmt.Sprintf("'%s' in title", term))
		}
		if strings.Contains(message, needle) {
			add(fmt.Sprintf("'%s' in message", term))
		}
	}

	if len(leaked) == 0 {
		return check(CheckLeakage, model.StatusPass,
			fmt.Sprintf("No internal terms leaked (checked %d terms)", len(terms)), "")
	}
	sort.Strings(leaked)
	list := strings.Join(leaked, ", ")
	return check(CheckLeakage, model.StatusFail,
		"Internal terms detected: "+list,
		fmt.Sprintf("Remove or rephrase the following internal terms: %s. Use customer-facing language instead.", list))
}

func checkRequiredFields(draft model.GeneratedDraft, evidence model.ExtractedEvidence) model.DeterministicCheck {
	message := strings.ToLower(draft.Message)
	var missing []string

	if !containsAny(message, ImpactKeywords) {
		missing = append(missing, "customer impact statement")
	}

	affected := evidence.IncidentMetadata.AffectedService
	if !strings.Contains(message, strings.ToLower(affected)) && !containsAny(message, GenericServiceTokens) {
		missing = append(missing, fmt.Sprintf("affected service ('%s')", affected))
	}

	if !containsAny(message, ActionKeywords) {
		missing = append(missing, "action statement")
	}

	if strings.TrimSpace(draft.NextUpdate) == "" {
		missing = append(missing, "next update timing")
	}

	switch len(missing) {
	case 0:
		return check(CheckRequiredFields, model.StatusPass,
			"All required fields are present (impact, service, action, next update)", "")
	case 1:
		return check(CheckRequiredFields, model.StatusWarning,
			"Missing element: "+missing[0],
			fmt.Sprintf("Consider adding %s to the message for completeness.", missing[0]))
	default:
		list := strings.Join(missing, ", ")
		return check(CheckRequiredFields, model.StatusFail,
			fmt.Sprintf("Missing %d elements: %s", len(missing), list),
			"Add the following elements to the message: "+list)
	}
}

func checkPhaseRequirements(draft model.GeneratedDraft, evidence model.ExtractedEvidence) model.DeterministicCheck {
	phase := strings.ToLower(strings.TrimSpace(evidence.Phase))
	message := strings.ToLower(draft.Message)
	title := strings.ToLower(draft.Title)

	switch phase {
	case model.PhaseInvestigating:
		var claims []string
		for _, claim := range RootCauseClaims {
			if strings.Contains(message, claim) || strings.Contains(title, claim) {
				claims = append(claims, claim)
			}
		}
		if len(claims) > 0 {
			return check(CheckPhase, model.StatusFail,
				"Investigating phase should not claim root cause. Found: "+strings.Join(claims, ", "),
				"Remove root cause claims. During investigation, use phrases like 'investigating the issue' or 'working to understand the problem' instead.")
		}
		return check(CheckPhase, model.StatusPass, "Investigating phase: correctly avoids root cause claims", "")

	case model.PhaseIdentified:
		if containsAny(message, CauseKeywords) {
			return check(CheckPhase, model.StatusPass, "Identified phase: includes cause/explanation", "")
		}
		return check(CheckPhase, model.StatusFail,
			"Identified phase should explain the root cause or issue",
			"Add an explanation of what caused the issue (in customer-friendly terms).")

	case model.PhaseMonitoring:
		if containsAny(message, FixKeywords) {
			return check(CheckPhase, model.StatusPass, "Monitoring phase: mentions deployed fix", "")
		}
		return check(CheckPhase, model.StatusFail,
			"Monitoring phase should mention that a fix has been deployed",
			"Add a statement about the fix that was deployed (e.g., 'We have deployed a fix and are monitoring the results').")

	case model.PhaseResolved:
		hasSummary := containsAny(message, ResolutionKeywords)
		hasApology := containsAny(message, ApologyKeywords)
		switch {
		case hasSummary && hasApology:
			return check(CheckPhase, model.StatusPass, "Resolved phase: includes both resolution summary and apology", "")
		case hasSummary:
			return check(CheckPhase, model.StatusWarning,
				"Resolved phase: has summary but missing apology",
				"Consider adding apology to provide complete closure.")
		case hasApology:
			return check(CheckPhase, model.StatusWarning,
				"Resolved phase: has apology but missing resolution summary",
				"Consider adding resolution summary to provide complete closure.")
		default:
			return check(CheckPhase, model.StatusFail,
				"Resolved phase should include resolution summary and apology",
				"Add a summary of the resolution and an apology for the inconvenience caused to customers.")
		}
	}

	return check(CheckPhase, model.StatusWarning,
		fmt.Sprintf("Unknown phase: '%s' (expected: %s)", evidence.Phase, strings.Join(model.KnownPhases, ", ")), "")
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
