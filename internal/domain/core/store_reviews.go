package core

import "context"

const reviewColumns = `
    SELECT r.id::text, r.employee_id::text, e.first_name || ' ' || e.last_name, r.review_date,
           r.reviewer, r.rating, r.comments, r.goals, r.strengths, r.areas_for_improvement,
           r.next_review_date, r.created_at
    FROM performance_reviews r
    JOIN employees e ON e.id = r.employee_id`

func scanReview(row interface{ Scan(dest ...any) error }) (PerformanceReview, error) {
	var review PerformanceReview
	err := row.Scan(
		&review.ID, &review.EmployeeID, &review.EmployeeName, &review.ReviewDate,
		&review.Reviewer, &review.Rating, &review.Comments, &review.Goals, &review.Strengths, &review.AreasForImprovement,
		&review.NextReviewDate, &review.CreatedAt,
	)
	return review, err
}

func (s *Store) ListPerformanceReviews(ctx context.Context, filter ReviewFilter) ([]PerformanceReview, error) {
	where := filter.where()
	rows, err := s.DB.Query(ctx, reviewColumns+where.sql()+" ORDER BY r.created_at, r.id", where.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []PerformanceReview{}
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, review)
	}
	return out, rows.Err()
}

func (s *Store) GetPerformanceReview(ctx context.Context, id string) (PerformanceReview, error) {
	if !validID(id) {
		return PerformanceReview{}, notFound("performance review")
	}
	review, err := scanReview(s.DB.QueryRow(ctx, reviewColumns+" WHERE r.id = $1", id))
	if err != nil {
		return PerformanceReview{}, translateError(err, "performance review")
	}
	return review, nil
}

func (s *Store) CreatePerformanceReview(ctx context.Context, review PerformanceReview) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO performance_reviews (employee_id, review_date, reviewer, rating, comments, goals, strengths,
      areas_for_improvement, next_review_date)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    RETURNING id::text
  `,
		review.EmployeeID, review.ReviewDate, review.Reviewer, review.Rating, review.Comments, review.Goals,
		review.Strengths, review.AreasForImprovement, review.NextReviewDate,
	).Scan(&id)
	if err != nil {
		return "", translateError(err, "performance review")
	}
	return id, nil
}

func (s *Store) UpdatePerformanceReview(ctx context.Context, id string, review PerformanceReview) error {
	if !validID(id) {
		return notFound("performance review")
	}
	cmd, err := s.DB.Exec(ctx, `
    UPDATE performance_reviews
    SET employee_id = $1,
        review_date = $2,
        reviewer = $3,
        rating = $4,
        comments = $5,
        goals = $6,
        strengths = $7,
        areas_for_improvement = $8,
        next_review_date = $9
    WHERE id = $10
  `,
		review.EmployeeID, review.ReviewDate, review.Reviewer, review.Rating, review.Comments, review.Goals,
		review.Strengths, review.AreasForImprovement, review.NextReviewDate, id,
	)
	if err != nil {
		return translateError(err, "performance review")
	}
	if cmd.RowsAffected() == 0 {
		return notFound("performance review")
	}
	return nil
}

func (s *Store) DeletePerformanceReview(ctx context.Context, id string) error {
	return deleteByID(ctx, s.DB, "performance_reviews", "performance review", id)
}
