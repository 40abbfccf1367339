package model

import (
	"errors"
	"strings"
)

// EvidenceMapping - 초안의 문장 일부를 원본 소스에 연결
type EvidenceMapping struct {
	GeneratedText         string  `json:"generated_text"`
	EvidenceField         string  `json:"evidence_field"`
	OriginalTechnicalTerm *string `json:"original_technical_term"`
	CustomerFacingTerm    *string `json:"customer_facing_term"`
}

// GeneratedDraft - 2단계(생성) 결과, 고객용 status page 초안
type GeneratedDraft struct {
	Title                string            `json:"title"`
	Status               string            `json:"status"`
	Message              string            `json:"message"`
	NextUpdate           string            `json:"next_update"`
	EvidenceMappings     []EvidenceMapping `json:"evidence_mappings"`
	InternalTermsAvoided []string          `json:"internal_terms_avoided"`
	ConfidenceNotes      *string           `json:"confidence_notes"`
}

// Validate - 평가에 필요한 최소 필드 확인
func (d GeneratedDraft) Validate() error {
	var problems []string
	if strings.TrimSpace(d.Title) == "" {
		problems = append(problems, "title is required")
	}
	if strings.TrimSpace(d.Status) == "" {
		problems = append(problems, "status is required")
	}
	if strings.TrimSpace(d.Message) == "" {
		problems = append(problems, "message is required")
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}
