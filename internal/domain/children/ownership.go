package children

import "context"

// ParentOf expone el parentID de un niño.
// Se usa para evitar ciclos de imports entre módulos (children <-> schedule).
func (s *Service) ParentOf(ctx context.Context, childID string) (string, error) {
	c, err := s.GetByID(ctx, childID)
	if err != nil {
		return "", err
	}
	return c.ParentID, nil
}
