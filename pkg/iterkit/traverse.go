package iterkit

// Visitor receives the outgoing shared references of an object during traversal.
// Returning a non-nil error stops the traversal, and Traverse returns that error.
type Visitor func(ref any) error

// Traverser exposes the outgoing shared references of an object to object graph tooling.
// References already released, such as the source of an exhausted iterator, are not visited.
type Traverser interface {
	Traverse(visit Visitor) error
}

func visitAll(visit Visitor, refs ...any) error {
	for _, ref := range refs {
		if ref == nil {
			continue
		}
		if err := visit(ref); err != nil {
			return err
		}
	}
	return nil
}
