package domain

// Script describes a shell script generated by the run command.
type Script struct {
	Shell Shell
	Lines []string
	// Env is merged into the subprocess environment.
	Env     map[string]string
	TempDir string
	// Dir is the working directory of the subprocess.
	Dir string
}

// Body returns the full script text including the shell header.
func (s Script) Body() string {
	body := s.Shell.Header()
	for _, line := range s.Lines {
		body += line + "\n"
	}
	return body
}
