package settings

// ForceImport is a mechanism to ensure godoc can reference all required packages
type ForceImport string
