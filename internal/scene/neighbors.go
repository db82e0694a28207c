package scene

// RefreshNeighbors recomputes every particle's nearest neighbors by
// exhaustive pairwise comparison, keeping the NeighborCount smallest squared
// distances. O(n^2), acceptable because n is capped well under the point
// where it would matter.
func (s *Scene) RefreshNeighbors() {
	for i := range s.Particles {
		p := &s.Particles[i]
		p.LinkN = 0
		for j := range s.Particles {
			if j == i {
				continue
			}
			q := &s.Particles[j]
			dx := q.X - p.X
			dy := q.Y - p.Y
			p.insertLink(j, dx*dx+dy*dy)
		}
	}
}

// insertLink keeps p.Links sorted ascending by squared distance.
func (p *Particle) insertLink(j int, d2 float64) {
	switch {
	case p.LinkN < len(p.Links):
		p.Links[p.LinkN] = j
		p.LinkDist[p.LinkN] = d2
		p.LinkN++
	case d2 >= p.LinkDist[p.LinkN-1]:
		return
	default:
		p.Links[p.LinkN-1] = j
		p.LinkDist[p.LinkN-1] = d2
	}
	for k := p.LinkN - 1; k > 0 && p.LinkDist[k] < p.LinkDist[k-1]; k-- {
		p.Links[k], p.Links[k-1] = p.Links[k-1], p.Links[k]
		p.LinkDist[k], p.LinkDist[k-1] = p.LinkDist[k-1], p.LinkDist[k]
	}
}
