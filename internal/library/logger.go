package library

// Logger is the minimal logging capability components accept. It is
// satisfied by *zap.SugaredLogger; injecting it keeps the pipeline free
// of package-level logger state.
type Logger interface {
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
}
