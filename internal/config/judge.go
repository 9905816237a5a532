package config

import (
	"os"
	"strconv"
	"time"
)

// JudgeConfig tunes the judging pipeline itself
type JudgeConfig struct {
	// SafetyScan toggles the advisory deny-list scan of submitted code.
	// Real isolation is the remote sandbox's responsibility.
	SafetyScan bool
	// CaseMargin is added on top of a test case's wall limit for the
	// client-side deadline, so a hung executor cannot stall a submission.
	CaseMargin time.Duration
	// StatusTTL bounds how long live judge phases stay visible.
	StatusTTL time.Duration
}

func NewJudgeConfig() *JudgeConfig {
	marginSec, err := strconv.Atoi(os.Getenv("JUDGE_CASE_MARGIN_SEC"))
	if err != nil || marginSec <= 0 {
		marginSec = 1
	}
	ttlMin, err := strconv.Atoi(os.Getenv("JUDGE_STATUS_TTL_MIN"))
	if err != nil || ttlMin <= 0 {
		ttlMin = 10
	}
	return &JudgeConfig{
		SafetyScan: os.Getenv("JUDGE_SAFETY_SCAN") != "false",
		CaseMargin: time.Duration(marginSec) * time.Second,
		StatusTTL:  time.Duration(ttlMin) * time.Minute,
	}
}
