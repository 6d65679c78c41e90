package models

// Info is the host and pod description served by /info.
// Every field is always present in the serialized object.
type Info struct {
	Hostname       string `json:"hostname" example:"web-7fbc"`
	IPAddress      string `json:"ip_address" example:"10.244.1.17"`
	Platform       string `json:"platform" example:"Linux-6.1.0-amd64-x86_64"`
	RuntimeVersion string `json:"runtime_version" example:"go1.23.3"`
	CurrentTime    string `json:"current_time" example:"2024-03-20T13:00:00.123456789Z"`
	PodName        string `json:"pod_name" example:"web-7fbc"`
	NodeName       string `json:"node_name" example:"node-1"`
	Namespace      string `json:"namespace" example:"prod"`
}
