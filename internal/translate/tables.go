package translate

// commandMapping pairs a POSIX command spelling with its PowerShell
// counterpart. Reversible entries also participate in the reverse
// (PowerShell to bash) pass; the rest are forward-only because their
// PowerShell side is not a plain command name that could be matched
// back unambiguously.
type commandMapping struct {
	bash       string
	powerShell string
	reversible bool
}

// commandMappings is the single source of truth for command-name
// translation in both directions.
var commandMappings = []commandMapping{
	{"echo", "Write-Output", true},
	{"cat", "Get-Content", true},
	{"ls", "Get-ChildItem", true},
	{"cp", "Copy-Item", true},
	{"mv", "Move-Item", true},
	{"rm", "Remove-Item", true},
	{"mkdir", "New-Item -ItemType Directory -Path", false},
	{"rmdir", "Remove-Item -Recurse", false},
	{"pwd", "Get-Location", true},
	{"cd", "Set-Location", true},
	{"grep", "Select-String", false},
	{"find", "Get-ChildItem -Recurse", false},
	{"sort", "Sort-Object", false},
	{"head", "Select-Object -First", false},
	{"tail", "Select-Object -Last", false},
	{"wc", "Measure-Object", false},
	{"touch", "New-Item -ItemType File -Path", false},
	{"chmod", "# chmod not applicable on Windows", false},
	{"chown", "# chown not applicable on Windows", false},
	{"which", "Get-Command", false},
	{"whoami", "$env:USERNAME", false},
	{"hostname", "$env:COMPUTERNAME", false},
	{"date", "Get-Date", false},
	{"sleep", "Start-Sleep -Seconds", false},
	{"kill", "Stop-Process -Id", false},
	{"ps", "Get-Process", false},
	{"env", "Get-ChildItem Env:", false},
	{"export", "$env:", false},
	{"unset", "Remove-Item Env:", false},
	{"curl", "Invoke-WebRequest", false},
	{"wget", "Invoke-WebRequest -OutFile", false},
	{"tar", "Expand-Archive", false},
	{"zip", "Compress-Archive", false},
	{"unzip", "Expand-Archive", false},
	{"diff", "Compare-Object", false},
	{"tee", "Tee-Object", false},
	{"true", "$true", false},
	{"false", "$false", false},
	{"test", "Test-Path", false},
}

// operatorMapping pairs a POSIX control operator with its PowerShell
// spelling. Pairs spelled identically in both dialects are listed for
// completeness but skipped by the forward pass.
type operatorMapping struct {
	bash       string
	powerShell string
}

var operatorMappings = []operatorMapping{
	{"&&", "&&"}, // native in PowerShell 7+
	{"||", "||"}, // native in PowerShell 7+
	{"|", "|"},
	{">", ">"},
	{">>", ">>"},
	{"2>&1", "*>&1"},
	{"/dev/null", "$null"},
}

// forwardCommands indexes commandMappings by the POSIX spelling.
var forwardCommands = buildForwardCommands()

func buildForwardCommands() map[string]string {
	m := make(map[string]string, len(commandMappings))
	for _, cm := range commandMappings {
		m[cm.bash] = cm.powerShell
	}
	return m
}

// reverseReplacements lists the literal PowerShell-to-bash rewrites
// applied by ToBash after the $env: prefix pass: the reversible subset
// of the command table plus the special status variables.
var reverseReplacements = buildReverseReplacements()

func buildReverseReplacements() [][2]string {
	var pairs [][2]string
	for _, cm := range commandMappings {
		if cm.reversible {
			pairs = append(pairs, [2]string{cm.powerShell, cm.bash})
		}
	}
	pairs = append(pairs,
		[2]string{"$LASTEXITCODE", "$?"},
		[2]string{"$PID", "$$"},
	)
	return pairs
}

// powerShellAutomatic lists PowerShell automatic variables that the
// dollar-sign scanner passes through untouched. Keeping these intact
// means text inserted by the command and operator phases (such as $null
// for /dev/null) is never rewritten again, and a line that is already
// PowerShell survives a second translation unchanged.
var powerShellAutomatic = map[string]bool{
	"true":         true,
	"false":        true,
	"null":         true,
	"args":         true,
	"PID":          true,
	"LASTEXITCODE": true,
}
