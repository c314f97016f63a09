package core

import (
	"math"
	"testing"
)

func TestMatrixInverseIdentity(t *testing.T) {
	inv, err := Identity().Inverse()
	if err != nil {
		t.Fatalf("Identity().Inverse() returned error: %v", err)
	}
	if inv != Identity() {
		t.Errorf("inverse of identity = %v, want identity", inv)
	}
}

func TestMatrixInverseRoundTrip(t *testing.T) {
	m := ShiftMatrix(NewVec3(1, 2, 3)).Multiply(ScaleMatrix(NewVec3(2, 3, 4))).Multiply(RotateXYZ(NewVec3(15, 30, 45)))

	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Inverse() returned error: %v", err)
	}

	product := m.Multiply(inv)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(product[i][j]-want) > 1e-9 {
				t.Errorf("M * M^-1 [%d][%d] = %v, want %v", i, j, product[i][j], want)
			}
		}
	}
}

func TestMatrixInverseSingular(t *testing.T) {
	singular := ScaleMatrix(NewVec3(1, 0, 1))
	_, err := singular.Inverse()
	if err == nil {
		t.Fatal("expected Singular error for a matrix with a zero scale axis")
	}
	var rendererErr *Error
	if !errorsAs(err, &rendererErr) || rendererErr.Kind != Singular {
		t.Errorf("expected a Singular *Error, got %v", err)
	}
}

func TestMatrixTransposeInvolution(t *testing.T) {
	m := RotateXYZ(NewVec3(10, 20, 30))
	if got := m.Transpose().Transpose(); got != m {
		t.Errorf("Transpose(Transpose(m)) != m")
	}
}

func TestMatrixMultiplyPointAppliesTranslation(t *testing.T) {
	m := ShiftMatrix(NewVec3(1, 2, 3))
	p := m.MultiplyPoint(NewVec3(0, 0, 0))
	if !p.Equals(NewVec3(1, 2, 3)) {
		t.Errorf("translated origin = %v, want (1,2,3)", p)
	}
}

func TestMatrixMultiplyVectorIgnoresTranslation(t *testing.T) {
	m := ShiftMatrix(NewVec3(1, 2, 3))
	v := m.MultiplyVector(NewVec3(5, 5, 5))
	if !v.Equals(NewVec3(5, 5, 5)) {
		t.Errorf("translated vector = %v, want unchanged (5,5,5)", v)
	}
}

func TestRotateMatrixOutOfRangeAxis(t *testing.T) {
	_, err := RotateMatrix(90, 3)
	if err == nil {
		t.Fatal("expected OutOfRange error for axis 3")
	}
}

// errorsAs is a tiny local helper so this test doesn't need to import
// the standard errors package just for one type assertion.
func errorsAs(err error, target **Error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	*target = e
	return true
}
