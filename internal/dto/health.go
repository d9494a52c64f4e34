package dto

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	LLMProvider  string            `json:"llm_provider"`
	Dependencies map[string]string `json:"dependencies"`
}

type RootInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
	Docs        string `json:"docs"`
}
