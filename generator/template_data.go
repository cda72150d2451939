package generator

// endpointsFileData is the data passed to both file templates.
type endpointsFileData struct {
	PackageName   string
	ReceiverType  string
	InterfaceName string
	Operations    []*OperationInfo
}
