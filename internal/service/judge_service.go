package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"pylearn_backend/internal/config"
)

// RunResult 一次代码执行的产出
type RunResult struct {
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
	Status string `json:"status"`
}

// CodeRunner 代码执行器。实现必须隔离用户代码，本服务内不直接执行任何提交的代码
type CodeRunner interface {
	Run(ctx context.Context, code, stdin string) (*RunResult, error)
}

// JudgeService 调用 Judge0 兼容的远程判题服务，沙箱由判题端提供
type JudgeService struct {
	config config.JudgeConfig
	client *http.Client
}

func NewJudgeService(cfg config.JudgeConfig) *JudgeService {
	return &JudgeService{
		config: cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type judgeSubmission struct {
	SourceCode string `json:"source_code"`
	LanguageID int    `json:"language_id"`
	Stdin      string `json:"stdin"`
}

type judgeResponse struct {
	Stdout        string `json:"stdout"`
	Stderr        string `json:"stderr"`
	CompileOutput string `json:"compile_output"`
	Status        struct {
		ID          int    `json:"id"`
		Description string `json:"description"`
	} `json:"status"`
}

func (s *JudgeService) Run(ctx context.Context, code, stdin string) (*RunResult, error) {
	body := judgeSubmission{
		SourceCode: code,
		LanguageID: s.config.LanguageID,
		Stdin:      stdin,
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	url := s.config.URL + "/submissions?base64_encoded=false&wait=true"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if s.config.APIKey != "" {
		req.Header.Set("X-RapidAPI-Key", s.config.APIKey)
	}
	if s.config.Host != "" {
		req.Header.Set("X-RapidAPI-Host", s.config.Host)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("judge API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result judgeResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, err
	}

	stderr := result.Stderr
	if stderr == "" {
		stderr = result.CompileOutput
	}

	return &RunResult{
		Stdout: result.Stdout,
		Stderr: stderr,
		Status: result.Status.Description,
	}, nil
}
